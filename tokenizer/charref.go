package tokenizer

import (
	"github.com/htmlscan/htmlscan/entities"
	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/internal/util/ascii"
	"github.com/htmlscan/htmlscan/stream"
)

// win1252Remap substitutes the Windows-1252 interpretations for numeric
// references into the C1 control range, per the numeric character
// reference end state.
var win1252Remap = map[uint64]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

func (t *Tokenizer) characterReferenceState(it stream.Item) bool {
	t.tempBuf = append(t.tempBuf[:0], '&')

	switch {
	case !it.EOF && ascii.IsAlphanumeric(it.R):
		// Seed the trie walk at "&" and let the named state take the
		// current item.
		t.refNode, _ = entities.Lookup([]byte{'&'})
		t.refMatch = nil
		t.refMatchLen = 0
		t.refItems = t.refItems[:0]
		t.state = NamedCharacterReferenceState
		return true
	case !it.EOF && it.R == '#':
		t.tempBuf = append(t.tempBuf, it.R)
		t.state = NumericCharacterReferenceState
		return false
	default:
		t.flushCharRef()
		t.state = t.returnState
		return true
	}
}

func (t *Tokenizer) namedCharacterReferenceState(it stream.Item) bool {
	if !it.EOF && it.R < 0x80 {
		if next, ok := t.refNode.Step(byte(it.R)); ok {
			t.refNode = next
			t.tempBuf = append(t.tempBuf, it.R)
			t.refItems = append(t.refItems, it)
			if e := next.Entity(); e != nil {
				t.refMatch = e
				t.refMatchLen = len(t.tempBuf)
			}
			return false
		}
	}

	// The walk cannot be extended by the current item.
	if t.refMatch == nil {
		t.flushCharRef()
		t.state = AmbiguousAmpersandState
		return true
	}

	// Items consumed beyond the longest match are replayed after the
	// resolution, followed by the item that ended the walk.
	extras := append([]stream.Item(nil), t.refItems[t.refMatchLen-1:]...)
	extras = append(extras, it)

	endsSemicolon := t.refMatch.Name[len(t.refMatch.Name)-1] == ';'
	var next rune
	hasNext := false
	if len(extras) > 1 {
		next, hasNext = extras[0].R, true
	} else if !it.EOF {
		next, hasNext = it.R, true
	}

	// Historical rule: a semicolonless match inside an attribute value is
	// left verbatim when it runs into '=' or an alphanumeric, so URLs
	// like "?x=1&not=2" survive untouched.
	if !endsSemicolon && t.returnState.isAttributeValue() && hasNext &&
		(next == '=' || ascii.IsAlphanumeric(next)) {
		t.tempBuf = t.tempBuf[:t.refMatchLen]
		t.flushCharRef()
	} else {
		if !endsSemicolon {
			t.reportError(errors.MissingSemicolonAfterCharacterReference)
		}
		t.tempBuf = append(t.tempBuf[:0], t.refMatch.Runes()...)
		t.flushCharRef()
	}

	t.state = t.returnState
	t.replay(extras...)
	return false
}

func (t *Tokenizer) ambiguousAmpersandState(it stream.Item) bool {
	if !it.EOF && ascii.IsAlphanumeric(it.R) {
		if t.returnState.isAttributeValue() {
			t.appendAttrValue(it.R)
		} else {
			t.emitChar(it.R)
		}
		return false
	}
	if !it.EOF && it.R == ';' {
		t.reportError(errors.UnknownNamedCharacterReference)
	}
	t.state = t.returnState
	return true
}

func (t *Tokenizer) numericCharacterReferenceState(it stream.Item) bool {
	t.charRefCode = 0
	if !it.EOF && (it.R == 'x' || it.R == 'X') {
		t.tempBuf = append(t.tempBuf, it.R)
		t.state = HexadecimalCharacterReferenceStartState
		return false
	}
	t.state = DecimalCharacterReferenceStartState
	return true
}

// characterReferenceStartState covers the hexadecimal and decimal start
// states: at least one digit is required.
func (t *Tokenizer) characterReferenceStartState(it stream.Item, hex bool) bool {
	if !it.EOF {
		if hex && ascii.IsHexDigit(it.R) {
			t.state = HexadecimalCharacterReferenceState
			return true
		}
		if !hex && ascii.IsDigit(it.R) {
			t.state = DecimalCharacterReferenceState
			return true
		}
	}
	t.reportError(errors.AbsenceOfDigitsInNumericCharacterReference)
	t.flushCharRef()
	t.state = t.returnState
	return true
}

func (t *Tokenizer) hexadecimalCharacterReferenceState(it stream.Item) bool {
	if !it.EOF {
		if ascii.IsHexDigit(it.R) {
			t.accumulateCharRef(16, uint64(ascii.HexValue(it.R)))
			return false
		}
		if it.R == ';' {
			t.state = NumericCharacterReferenceEndState
			return false
		}
	}
	t.reportError(errors.MissingSemicolonAfterCharacterReference)
	t.state = NumericCharacterReferenceEndState
	return true
}

func (t *Tokenizer) decimalCharacterReferenceState(it stream.Item) bool {
	if !it.EOF {
		if ascii.IsDigit(it.R) {
			t.accumulateCharRef(10, uint64(it.R-'0'))
			return false
		}
		if it.R == ';' {
			t.state = NumericCharacterReferenceEndState
			return false
		}
	}
	t.reportError(errors.MissingSemicolonAfterCharacterReference)
	t.state = NumericCharacterReferenceEndState
	return true
}

// accumulateCharRef folds one digit into the reference code, saturating
// just above the Unicode range so overflow is detected without wrapping.
func (t *Tokenizer) accumulateCharRef(base, digit uint64) {
	t.charRefCode = t.charRefCode*base + digit
	if t.charRefCode > 0x10FFFF {
		t.charRefCode = 0x110000
	}
}

// numericCharacterReferenceEndState applies the code point fixups and
// flushes the result. The current item is reconsumed in the return state;
// it was either the character after ';' or the one that ended the digits.
func (t *Tokenizer) numericCharacterReferenceEndState(it stream.Item) bool {
	code := t.charRefCode

	switch {
	case code == 0:
		t.reportError(errors.NullCharacterReference)
		code = uint64(stream.ReplacementChar)
	case code > 0x10FFFF:
		t.reportError(errors.CharacterReferenceOutsideUnicodeRange)
		code = uint64(stream.ReplacementChar)
	case code >= 0xD800 && code <= 0xDFFF:
		t.reportError(errors.SurrogateCharacterReference)
		code = uint64(stream.ReplacementChar)
	case isNoncharacter(code):
		t.reportError(errors.NoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		t.reportError(errors.ControlCharacterReference)
		if remapped, ok := win1252Remap[code]; ok {
			code = uint64(remapped)
		}
	}

	t.tempBuf = append(t.tempBuf[:0], rune(code))
	t.flushCharRef()
	t.state = t.returnState
	return true
}

// isNoncharacter reports the Unicode noncharacter ranges: U+FDD0..U+FDEF
// and the last two code points of every plane.
func isNoncharacter(code uint64) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	return code&0xFFFF >= 0xFFFE
}

// isControl reports C0 and C1 controls, DEL included.
func isControl(code uint64) bool {
	return code <= 0x1F || (code >= 0x7F && code <= 0x9F)
}

// isASCIIWhitespace matches the whitespace class used by the control
// character reference fixup.
func isASCIIWhitespace(code uint64) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x20:
		return true
	}
	return false
}
