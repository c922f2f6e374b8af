package tokenizer

import (
	"strings"

	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/internal/util/ascii"
	"github.com/htmlscan/htmlscan/stream"
)

func (t *Tokenizer) doctypeState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.createDoctype()
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeDOCTYPENameState
	case it.R == '>':
		t.state = BeforeDOCTYPENameState
		return true
	default:
		t.reportError(errors.MissingWhitespaceBeforeDoctypeName)
		t.state = BeforeDOCTYPENameState
		return true
	}
	return false
}

func (t *Tokenizer) beforeDoctypeNameState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.createDoctype()
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case ascii.IsUpperAlpha(it.R):
		t.createDoctype()
		t.appendName(lowercased(it.R))
		t.state = DOCTYPENameState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.createDoctype()
		t.appendName(stream.ReplacementChar)
		t.state = DOCTYPENameState
	case it.R == '>':
		// The name stays empty here; only the force-quirks flag records
		// that the DOCTYPE was malformed.
		t.reportError(errors.MissingDoctypeName)
		t.createDoctype()
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.createDoctype()
		t.appendName(it.R)
		t.state = DOCTYPENameState
	}
	return false
}

func (t *Tokenizer) doctypeNameState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.doctypeKeywordBuf = t.doctypeKeywordBuf[:0]
		t.doctypeKeywordItems = t.doctypeKeywordItems[:0]
		t.state = AfterDOCTYPENameState
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
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

// afterDoctypeNameState accumulates up to six characters while deciding
// between the PUBLIC and SYSTEM keywords. On a mismatch the consumed
// items replay through the bogus DOCTYPE state.
func (t *Tokenizer) afterDoctypeNameState(it stream.Item) bool {
	if it.EOF {
		if len(t.doctypeKeywordBuf) > 0 {
			t.bogusFromDoctypeKeyword(it)
			return false
		}
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	if len(t.doctypeKeywordBuf) == 0 {
		switch {
		case ascii.IsWhitespace(it.R):
			return false
		case it.R == '>':
			t.emitCurrent()
			t.state = DataState
			return false
		}
	}

	t.doctypeKeywordBuf = append(t.doctypeKeywordBuf, it.R)
	t.doctypeKeywordItems = append(t.doctypeKeywordItems, it)

	word := strings.ToLower(string(t.doctypeKeywordBuf))
	switch {
	case strings.HasPrefix("public", word):
		if len(word) == len("public") {
			t.state = AfterDOCTYPEPublicKeywordState
		}
	case strings.HasPrefix("system", word):
		if len(word) == len("system") {
			t.state = AfterDOCTYPESystemKeywordState
		}
	default:
		t.bogusFromDoctypeKeyword(stream.Item{})
	}
	return false
}

// bogusFromDoctypeKeyword handles the PUBLIC/SYSTEM mismatch path.
func (t *Tokenizer) bogusFromDoctypeKeyword(eof stream.Item) {
	t.reportError(errors.InvalidCharacterSequenceAfterDoctypeName)
	t.tok.ForceQuirks = true
	t.state = BogusDOCTYPEState
	if eof.EOF {
		t.replay(append(append([]stream.Item(nil), t.doctypeKeywordItems...), eof)...)
	} else {
		t.replay(append([]stream.Item(nil), t.doctypeKeywordItems...)...)
	}
	t.doctypeKeywordBuf = t.doctypeKeywordBuf[:0]
	t.doctypeKeywordItems = t.doctypeKeywordItems[:0]
}

func (t *Tokenizer) afterDoctypePublicKeywordState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeDOCTYPEPublicIdentifierState
	case it.R == '"':
		t.reportError(errors.MissingWhitespaceAfterDoctypePublicKeyword)
		t.tok.HasPublicID = true
		t.state = DOCTYPEPublicIdentifierDoubleQuotedState
	case it.R == '\'':
		t.reportError(errors.MissingWhitespaceAfterDoctypePublicKeyword)
		t.tok.HasPublicID = true
		t.state = DOCTYPEPublicIdentifierSingleQuotedState
	case it.R == '>':
		t.reportError(errors.MissingDoctypePublicIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypePublicIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) beforeDoctypePublicIdentifierState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '"':
		t.tok.HasPublicID = true
		t.state = DOCTYPEPublicIdentifierDoubleQuotedState
	case it.R == '\'':
		t.tok.HasPublicID = true
		t.state = DOCTYPEPublicIdentifierSingleQuotedState
	case it.R == '>':
		t.reportError(errors.MissingDoctypePublicIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypePublicIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) doctypePublicIdentifierQuotedState(it stream.Item, quote rune) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case it.R == quote:
		t.state = AfterDOCTYPEPublicIdentifierState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.tok.PublicID = append(t.tok.PublicID, stream.ReplacementChar)
	case it.R == '>':
		t.reportError(errors.AbruptDoctypePublicIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.tok.PublicID = append(t.tok.PublicID, it.R)
	}
	return false
}

func (t *Tokenizer) afterDoctypePublicIdentifierState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BetweenDOCTYPEPublicAndSystemIdentifiersState
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
	case it.R == '"':
		t.reportError(errors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case it.R == '\'':
		t.reportError(errors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
	case it.R == '"':
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case it.R == '\'':
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) afterDoctypeSystemKeywordState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		t.state = BeforeDOCTYPESystemIdentifierState
	case it.R == '"':
		t.reportError(errors.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case it.R == '\'':
		t.reportError(errors.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	case it.R == '>':
		t.reportError(errors.MissingDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '"':
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case it.R == '\'':
		t.tok.HasSystemID = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	case it.R == '>':
		t.reportError(errors.MissingDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.reportError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) doctypeSystemIdentifierQuotedState(it stream.Item, quote rune) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case it.R == quote:
		t.state = AfterDOCTYPESystemIdentifierState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.tok.SystemID = append(t.tok.SystemID, stream.ReplacementChar)
	case it.R == '>':
		t.reportError(errors.AbruptDoctypeSystemIdentifier)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.state = DataState
	default:
		t.tok.SystemID = append(t.tok.SystemID, it.R)
	}
	return false
}

func (t *Tokenizer) afterDoctypeSystemIdentifierState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch {
	case ascii.IsWhitespace(it.R):
		// Ignored.
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
	default:
		// Unlike the other DOCTYPE mishaps this one does not force
		// quirks mode.
		t.reportError(errors.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.state = BogusDOCTYPEState
		return true
	}
	return false
}

func (t *Tokenizer) bogusDoctypeState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitCurrent()
		t.emitEOF(it)
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
	default:
		// Dropped.
	}
	return false
}
