package tokenizer

import (
	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/internal/util/ascii"
	"github.com/htmlscan/htmlscan/stream"
)

func (t *Tokenizer) tagOpenState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFBeforeTagName)
		t.emitChar('<')
		t.emitEOF(it)
		return false
	}

	switch {
	case it.R == '!':
		t.markupBuf = t.markupBuf[:0]
		t.markupItems = t.markupItems[:0]
		t.state = MarkupDeclarationOpenState
	case it.R == '/':
		t.state = EndTagOpenState
	case ascii.IsAlpha(it.R):
		t.createTag(StartTagToken)
		t.state = TagNameState
		return true
	case it.R == '?':
		t.reportError(errors.UnexpectedQuestionMarkInsteadOfTagName)
		t.createComment(nil)
		t.state = BogusCommentState
		return true
	default:
		t.reportError(errors.InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.state = DataState
		return true
	}
	return false
}

func (t *Tokenizer) endTagOpenState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsAlpha(it.R):
		t.createTag(EndTagToken)
		t.state = TagNameState
		return true
	case it.R == '>':
		t.reportError(errors.MissingEndTagName)
		t.state = DataState
	default:
		t.reportError(errors.InvalidFirstCharacterOfTagName)
		t.createComment(nil)
		t.state = BogusCommentState
		return true
	}
	return false
}

func (t *Tokenizer) tagNameState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeAttributeNameState
	case it.R == '/':
		t.state = SelfClosingStartTagState
	case it.R == '>':
		t.emitCurrentToData()
	case ascii.IsUpperAlpha(it.R):
		t.appendName(lowercased(it.R))
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendName(stream.ReplacementChar)
	default:
		t.appendName(it.R)
	}
	return false
}

func (t *Tokenizer) beforeAttributeNameState(it stream.Item) bool {
	if it.EOF || it.R == '/' || it.R == '>' {
		t.state = AfterAttributeNameState
		return true
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '=':
		t.reportError(errors.UnexpectedEqualsSignBeforeAttributeName)
		t.startAttribute(it.R)
		t.state = AttributeNameState
	default:
		t.startAttribute()
		t.state = AttributeNameState
		return true
	}
	return false
}

func (t *Tokenizer) attributeNameState(it stream.Item) bool {
	if it.EOF || ascii.IsWhitespace(it.R) || it.R == '/' || it.R == '>' {
		t.placeAttribute()
		t.state = AfterAttributeNameState
		return true
	}

	switch {
	case it.R == '=':
		t.placeAttribute()
		t.state = BeforeAttributeValueState
	case ascii.IsUpperAlpha(it.R):
		t.appendAttrName(lowercased(it.R))
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendAttrName(stream.ReplacementChar)
	case it.R == '"' || it.R == '\'' || it.R == '<':
		t.reportError(errors.UnexpectedCharacterInAttributeName)
		t.appendAttrName(it.R)
	default:
		t.appendAttrName(it.R)
	}
	return false
}

func (t *Tokenizer) afterAttributeNameState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '/':
		t.state = SelfClosingStartTagState
	case it.R == '=':
		t.state = BeforeAttributeValueState
	case it.R == '>':
		t.emitCurrentToData()
	default:
		t.startAttribute()
		t.state = AttributeNameState
		return true
	}
	return false
}

func (t *Tokenizer) beforeAttributeValueState(it stream.Item) bool {
	if !it.EOF {
		switch {
		case ascii.IsWhitespace(it.R):
			return false
		case it.R == '"':
			t.state = AttributeValueDoubleQuotedState
			return false
		case it.R == '\'':
			t.state = AttributeValueSingleQuotedState
			return false
		case it.R == '>':
			t.reportError(errors.MissingAttributeValue)
			t.emitCurrentToData()
			return false
		}
	}
	t.state = AttributeValueUnquotedState
	return true
}

// attributeValueQuotedState covers both quoted attribute value states;
// quote is the terminating quote character.
func (t *Tokenizer) attributeValueQuotedState(it stream.Item, quote rune) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case it.R == quote:
		t.state = AfterAttributeValueQuotedState
	case it.R == '&':
		t.returnState = t.state
		t.state = CharacterReferenceState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendAttrValue(stream.ReplacementChar)
	default:
		t.appendAttrValue(it.R)
	}
	return false
}

func (t *Tokenizer) attributeValueUnquotedState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeAttributeNameState
	case it.R == '&':
		t.returnState = AttributeValueUnquotedState
		t.state = CharacterReferenceState
	case it.R == '>':
		t.emitCurrentToData()
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendAttrValue(stream.ReplacementChar)
	case it.R == '"' || it.R == '\'' || it.R == '<' || it.R == '=' || it.R == '`':
		t.reportError(errors.UnexpectedCharacterInUnquotedAttributeValue)
		t.appendAttrValue(it.R)
	default:
		t.appendAttrValue(it.R)
	}
	return false
}

func (t *Tokenizer) afterAttributeValueQuotedState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeAttributeNameState
	case it.R == '/':
		t.state = SelfClosingStartTagState
	case it.R == '>':
		t.emitCurrentToData()
	default:
		t.reportError(errors.MissingWhitespaceBetweenAttributes)
		t.state = BeforeAttributeNameState
		return true
	}
	return false
}

func (t *Tokenizer) selfClosingStartTagState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInTag)
		t.emitEOF(it)
		return false
	}

	switch {
	case it.R == '>':
		t.tok.SelfClosing = true
		t.emitCurrentToData()
	default:
		t.reportError(errors.UnexpectedSolidusInTag)
		t.state = BeforeAttributeNameState
		return true
	}
	return false
}
