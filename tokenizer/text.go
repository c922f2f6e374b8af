package tokenizer

import (
	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/internal/util/ascii"
	"github.com/htmlscan/htmlscan/stream"
)

func (t *Tokenizer) dataState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitEOF(it)
	case it.R == '&':
		t.returnState = DataState
		t.state = CharacterReferenceState
	case it.R == '<':
		t.state = TagOpenState
	case it.R == 0:
		// The data state is the one place the tokenizer passes a NUL
		// through untouched; the tree builder decides what to do with it.
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(it.R)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) rcdataState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitEOF(it)
	case it.R == '&':
		t.returnState = RCDATAState
		t.state = CharacterReferenceState
	case it.R == '<':
		t.state = RCDATALessThanSignState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) rawtextState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitEOF(it)
	case it.R == '<':
		t.state = RAWTEXTLessThanSignState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitEOF(it)
	case it.R == '<':
		t.state = ScriptDataLessThanSignState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) plaintextState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitEOF(it)
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

// lessThanSignState covers the RCDATA and RAWTEXT less-than-sign states,
// which differ only in their follow-up states.
func (t *Tokenizer) lessThanSignState(it stream.Item, endTagOpen, text State) bool {
	if !it.EOF && it.R == '/' {
		t.tempBuf = t.tempBuf[:0]
		t.state = endTagOpen
		return false
	}
	t.emitChar('<')
	t.state = text
	return true
}

// endTagOpenInTextState covers the RCDATA, RAWTEXT, script data, and
// script data escaped end-tag-open states.
func (t *Tokenizer) endTagOpenInTextState(it stream.Item, endTagName, text State) bool {
	if !it.EOF && ascii.IsAlpha(it.R) {
		t.createTag(EndTagToken)
		t.state = endTagName
		return true
	}
	t.emitChar('<')
	t.emitChar('/')
	t.state = text
	return true
}

// endTagNameInTextState covers the four *-end-tag-name states. When the
// accumulated name is not the appropriate end tag, everything consumed is
// re-emitted as characters and the machine falls back to the text state.
func (t *Tokenizer) endTagNameInTextState(it stream.Item, text State) bool {
	if !it.EOF {
		switch {
		case ascii.IsWhitespace(it.R):
			if t.isAppropriateEndTag() {
				t.state = BeforeAttributeNameState
				return false
			}
		case it.R == '/':
			if t.isAppropriateEndTag() {
				t.state = SelfClosingStartTagState
				return false
			}
		case it.R == '>':
			if t.isAppropriateEndTag() {
				t.emitCurrent()
				t.state = DataState
				return false
			}
		case ascii.IsUpperAlpha(it.R):
			t.appendName(lowercased(it.R))
			t.tempBuf = append(t.tempBuf, it.R)
			return false
		case ascii.IsLowerAlpha(it.R):
			t.appendName(it.R)
			t.tempBuf = append(t.tempBuf, it.R)
			return false
		}
	}

	// Not an appropriate end tag after all: undo the token and replay the
	// consumed characters as text.
	t.tok = nil
	t.emitChar('<')
	t.emitChar('/')
	for _, r := range t.tempBuf {
		t.emitChar(r)
	}
	t.state = text
	return true
}

func (t *Tokenizer) scriptDataLessThanSignState(it stream.Item) bool {
	if !it.EOF {
		switch it.R {
		case '/':
			t.tempBuf = t.tempBuf[:0]
			t.state = ScriptDataEndTagOpenState
			return false
		case '!':
			t.state = ScriptDataEscapeStartState
			t.emitChar('<')
			t.emitChar('!')
			return false
		}
	}
	t.emitChar('<')
	t.state = ScriptDataState
	return true
}

func (t *Tokenizer) scriptDataEscapeStartState(it stream.Item) bool {
	if !it.EOF && it.R == '-' {
		t.state = ScriptDataEscapeStartDashState
		t.emitChar('-')
		return false
	}
	t.state = ScriptDataState
	return true
}

func (t *Tokenizer) scriptDataEscapeStartDashState(it stream.Item) bool {
	if !it.EOF && it.R == '-' {
		t.state = ScriptDataEscapedDashDashState
		t.emitChar('-')
		return false
	}
	t.state = ScriptDataState
	return true
}

func (t *Tokenizer) scriptDataEscapedState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.state = ScriptDataEscapedDashState
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataEscapedLessThanSignState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedDashState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.state = ScriptDataEscapedDashDashState
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataEscapedLessThanSignState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.state = ScriptDataEscapedState
		t.emitChar(stream.ReplacementChar)
	default:
		t.state = ScriptDataEscapedState
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedDashDashState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataEscapedLessThanSignState
	case it.R == '>':
		t.state = ScriptDataState
		t.emitChar('>')
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.state = ScriptDataEscapedState
		t.emitChar(stream.ReplacementChar)
	default:
		t.state = ScriptDataEscapedState
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedLessThanSignState(it stream.Item) bool {
	if !it.EOF {
		switch {
		case it.R == '/':
			t.tempBuf = t.tempBuf[:0]
			t.state = ScriptDataEscapedEndTagOpenState
			return false
		case ascii.IsAlpha(it.R):
			t.tempBuf = t.tempBuf[:0]
			t.emitChar('<')
			t.state = ScriptDataDoubleEscapeStartState
			return true
		}
	}
	t.emitChar('<')
	t.state = ScriptDataEscapedState
	return true
}

// scriptDataDoubleEscapeTransitionState covers the double-escape start
// and end states, which accumulate a tag name into the temporary buffer
// and flip between the escaped and double-escaped flavors when it spells
// "script".
func (t *Tokenizer) scriptDataDoubleEscapeTransitionState(it stream.Item, onScript, otherwise State) bool {
	if !it.EOF {
		switch {
		case ascii.IsWhitespace(it.R) || it.R == '/' || it.R == '>':
			if string(t.tempBuf) == "script" {
				t.state = onScript
			} else {
				t.state = otherwise
			}
			t.emitChar(it.R)
			return false
		case ascii.IsUpperAlpha(it.R):
			t.tempBuf = append(t.tempBuf, lowercased(it.R))
			t.emitChar(it.R)
			return false
		case ascii.IsLowerAlpha(it.R):
			t.tempBuf = append(t.tempBuf, it.R)
			t.emitChar(it.R)
			return false
		}
	}
	t.state = otherwise
	return true
}

func (t *Tokenizer) scriptDataDoubleEscapedState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.state = ScriptDataDoubleEscapedDashState
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.emitChar(stream.ReplacementChar)
	default:
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedDashState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.state = ScriptDataDoubleEscapedDashDashState
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.state = ScriptDataDoubleEscapedState
		t.emitChar(stream.ReplacementChar)
	default:
		t.state = ScriptDataDoubleEscapedState
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF(it)
	case it.R == '-':
		t.emitChar('-')
	case it.R == '<':
		t.state = ScriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case it.R == '>':
		t.state = ScriptDataState
		t.emitChar('>')
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.state = ScriptDataDoubleEscapedState
		t.emitChar(stream.ReplacementChar)
	default:
		t.state = ScriptDataDoubleEscapedState
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignState(it stream.Item) bool {
	if !it.EOF && it.R == '/' {
		t.tempBuf = t.tempBuf[:0]
		t.state = ScriptDataDoubleEscapeEndState
		t.emitChar('/')
		return false
	}
	t.state = ScriptDataDoubleEscapedState
	return true
}
