package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlscan/htmlscan/errors"
)

// textAndErrors tokenizes input and returns the concatenated character
// data plus the collected error kinds.
func textAndErrors(t *testing.T, input string, opts ...Option) (string, []errors.Kind) {
	t.Helper()
	sink := &TokenCollector{}
	tz := New(strings.NewReader(input), sink, opts...)
	require.NoError(t, tz.Run())
	return sink.Text(), tz.Errors().Kinds()
}

func TestNamedReferencesInData(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"with_semicolon", "a&amp;b", "a&b", nil},
		{"two_code_points", "&ngE;", "≧̸", nil},
		{"longest_match_wins", "&notin;", "∉", nil},
		{"shorter_match_with_semicolon", "&not;in", "¬in", nil},
		{"without_semicolon", "&amp", "&",
			[]errors.Kind{errors.MissingSemicolonAfterCharacterReference}},
		{"semicolonless_then_text", "&notit;", "¬it;",
			[]errors.Kind{errors.MissingSemicolonAfterCharacterReference}},
		{"unknown_with_semicolon", "&zzz;", "&zzz;",
			[]errors.Kind{errors.UnknownNamedCharacterReference}},
		{"unknown_without_semicolon", "&zzz ", "&zzz ", nil},
		{"bare_ampersand", "a&b", "a&b", nil},
		{"ampersand_at_eof", "a&", "a&", nil},
		{"valid_prefix_at_eof", "&am", "&am", nil},
		{"uppercase_variant", "&AMP;", "&", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kinds := textAndErrors(t, tt.input)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestNamedReferencesInAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"with_semicolon", `<a b="&amp;x">`, "&x", nil},
		// The historical rule: a semicolonless match followed by '=' or
		// an alphanumeric is left verbatim, with no error.
		{"historical_alnum", `<a b="&nota">`, "&nota", nil},
		{"historical_equals", `<a b="&not=">`, "&not=", nil},
		{"semicolonless_at_quote", `<a b="&not">`, "¬",
			[]errors.Kind{errors.MissingSemicolonAfterCharacterReference}},
		{"unquoted_value", `<a b=&amp;>`, "&", nil},
		{"single_quoted", `<a b='&lt;'>`, "<", nil},
		{"no_match_reported", `<a b="&foo;">`, "&foo;",
			[]errors.Kind{errors.UnknownNamedCharacterReference}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			require.GreaterOrEqual(t, len(tokens), 2)
			require.Equal(t, StartTagToken, tokens[0].Type)
			val, ok := tokens[0].Attr("b")
			require.True(t, ok)
			assert.Equal(t, tt.want, val)
			assert.Equal(t, tt.kinds, errs.Kinds())
		})
	}
}

func TestNumericReferenceForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"decimal", "&#65;", "A", nil},
		{"hex_lower", "&#x41;", "A", nil},
		{"hex_upper", "&#X41;", "A", nil},
		{"hex_mixed_digits", "&#x2603;", "☃", nil},
		{"decimal_no_semicolon", "&#65", "A",
			[]errors.Kind{errors.MissingSemicolonAfterCharacterReference}},
		{"hex_no_semicolon", "&#x41 ", "A ",
			[]errors.Kind{errors.MissingSemicolonAfterCharacterReference}},
		{"no_digits_decimal", "&#;", "&#;",
			[]errors.Kind{errors.AbsenceOfDigitsInNumericCharacterReference}},
		{"no_digits_hex", "&#x;", "&#x;",
			[]errors.Kind{errors.AbsenceOfDigitsInNumericCharacterReference}},
		{"no_digits_at_eof", "&#", "&#",
			[]errors.Kind{errors.AbsenceOfDigitsInNumericCharacterReference}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kinds := textAndErrors(t, tt.input)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestNumericReferenceFixups(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
		kinds []errors.Kind
	}{
		{"null", "&#0;", '�', []errors.Kind{errors.NullCharacterReference}},
		{"outside_range", "&#x110000;", '�',
			[]errors.Kind{errors.CharacterReferenceOutsideUnicodeRange}},
		{"huge_value_saturates", "&#99999999999999;", '�',
			[]errors.Kind{errors.CharacterReferenceOutsideUnicodeRange}},
		{"surrogate", "&#xD800;", '�',
			[]errors.Kind{errors.SurrogateCharacterReference}},
		{"noncharacter_kept", "&#xFDD0;", 0xFDD0,
			[]errors.Kind{errors.NoncharacterCharacterReference}},
		{"plane_end_noncharacter", "&#x1FFFE;", 0x1FFFE,
			[]errors.Kind{errors.NoncharacterCharacterReference}},
		{"windows1252_euro", "&#x80;", 0x20AC,
			[]errors.Kind{errors.ControlCharacterReference}},
		{"windows1252_trademark", "&#153;", 0x2122,
			[]errors.Kind{errors.ControlCharacterReference}},
		{"unmapped_control_kept", "&#x7F;", 0x7F,
			[]errors.Kind{errors.ControlCharacterReference}},
		{"carriage_return", "&#x0D;", 0x0D,
			[]errors.Kind{errors.ControlCharacterReference}},
		{"tab_is_clean", "&#x09;", 0x09, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			require.Equal(t, 2, len(tokens))
			require.Equal(t, CharacterToken, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Char)
			assert.Equal(t, tt.kinds, errs.Kinds())
		})
	}
}

func TestReferenceInRCDATA(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("a&amp;b</title>"), sink,
		WithInitialState(RCDATAState), WithLastStartTag("title"))
	require.NoError(t, tz.Run())

	assert.Equal(t, "a&b", sink.Text())
	tokens := sink.Tokens()
	assert.Equal(t, "EndTag(title)", tokens[len(tokens)-2].String())
}

func TestAmbiguousAmpersandAcrossAttributes(t *testing.T) {
	// The ambiguous-ampersand error fires inside attribute values too.
	tokens, errs := tokenize(t, `<a b="x&qqq;y">`)

	val, _ := tokens[0].Attr("b")
	assert.Equal(t, "x&qqq;y", val)
	assert.Equal(t, []errors.Kind{errors.UnknownNamedCharacterReference}, errs.Kinds())
}
