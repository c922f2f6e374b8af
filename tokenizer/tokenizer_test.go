package tokenizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlscan/htmlscan/errors"
)

// tokenize runs a full tokenization of input and returns the emitted
// tokens plus the collected parse errors.
func tokenize(t *testing.T, input string, opts ...Option) ([]Token, *errors.Collector) {
	t.Helper()
	sink := &TokenCollector{}
	tz := New(strings.NewReader(input), sink, opts...)
	require.NoError(t, tz.Run())
	return sink.Tokens(), tz.Errors()
}

// summarize maps tokens to their String() forms for compact comparison.
func summarize(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestDoctypeHTML(t *testing.T) {
	tokens, errs := tokenize(t, "<!DOCTYPE html>")

	assert.Equal(t, []string{"DOCTYPE(html)", "EOF(15)"}, summarize(tokens))
	assert.Equal(t, 0, errs.Len())

	dt := tokens[0]
	assert.Equal(t, "html", string(dt.Name))
	assert.False(t, dt.HasPublicID)
	assert.False(t, dt.HasSystemID)
	assert.False(t, dt.ForceQuirks)
}

func TestSimpleElementWithEntity(t *testing.T) {
	tokens, errs := tokenize(t, "<p class='x'>a&amp;b</p>")

	assert.Equal(t, []string{
		`StartTag(p class="x")`,
		`Character("a")`,
		`Character("&")`,
		`Character("b")`,
		`EndTag(p)`,
		"EOF(24)",
	}, summarize(tokens))
	assert.Equal(t, 0, errs.Len())
	assert.False(t, tokens[0].SelfClosing)
}

func TestHistoricalEntityInAttribute(t *testing.T) {
	// "&foo" never matches the reference table, and "&" followed by
	// non-entity characters flushes literally, so the query string
	// survives and no error is reported.
	tokens, errs := tokenize(t, `<a href="?x=1&foo=2">`)

	require.Equal(t, 2, len(tokens))
	val, ok := tokens[0].Attr("href")
	require.True(t, ok)
	assert.Equal(t, "?x=1&foo=2", val)
	assert.Equal(t, 0, errs.Len())
}

func TestEmptyComments(t *testing.T) {
	tokens, errs := tokenize(t, "<!---->")
	assert.Equal(t, []string{`Comment("")`, "EOF(7)"}, summarize(tokens))
	assert.Equal(t, 0, errs.Len())

	tokens, errs = tokenize(t, "<!--->")
	assert.Equal(t, []string{`Comment("")`, "EOF(6)"}, summarize(tokens))
	assert.Equal(t, []errors.Kind{errors.AbruptClosingOfEmptyComment}, errs.Kinds())
}

func TestSelfClosingTag(t *testing.T) {
	tokens, errs := tokenize(t, "<img/>")

	assert.Equal(t, []string{"StartTag(img self-closing)", "EOF(6)"}, summarize(tokens))
	assert.True(t, tokens[0].SelfClosing)
	assert.Equal(t, 0, errs.Len())
}

func TestScriptBodyWithLessThan(t *testing.T) {
	body := `var s = "<"; `
	tokens, errs := tokenize(t, "<script>"+body+"</script>")

	require.GreaterOrEqual(t, len(tokens), 3)
	assert.Equal(t, "StartTag(script)", tokens[0].String())
	assert.Equal(t, "EndTag(script)", tokens[len(tokens)-2].String())
	assert.Equal(t, EndOfFileToken, tokens[len(tokens)-1].Type)

	var text strings.Builder
	for _, tok := range tokens[1 : len(tokens)-2] {
		require.Equal(t, CharacterToken, tok.Type)
		text.WriteRune(tok.Char)
	}
	assert.Equal(t, body, text.String())
	assert.Equal(t, 0, errs.Len())
}

func TestNumericReferences(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		kinds []errors.Kind
	}{
		{"&#9731;", 0x2603, nil},
		{"&#x1D538;", 0x1D538, nil},
		{"&#128;", 0x20AC, []errors.Kind{errors.ControlCharacterReference}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			require.Equal(t, 2, len(tokens))
			assert.Equal(t, CharacterToken, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Char)
			assert.Equal(t, tt.kinds, errs.Kinds())
		})
	}
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"double_quoted", `<p a="1" b="2">`, `StartTag(p a="1" b="2")`, nil},
		{"single_quoted", `<p a='1'>`, `StartTag(p a="1")`, nil},
		{"unquoted", `<p a=1>`, `StartTag(p a="1")`, nil},
		{"valueless", `<p hidden>`, `StartTag(p hidden="")`, nil},
		{"mixed", `<p a b="2" c>`, `StartTag(p a="" b="2" c="")`, nil},
		{"name_lowercased", `<p ID="x">`, `StartTag(p id="x")`, nil},
		{"tag_lowercased", `<DIV>`, `StartTag(div)`, nil},
		{"duplicate_dropped", `<p a="1" a="2">`, `StartTag(p a="1")`,
			[]errors.Kind{errors.DuplicateAttribute}},
		{"duplicate_after_lowering", `<p A="1" a="2">`, `StartTag(p a="1")`,
			[]errors.Kind{errors.DuplicateAttribute}},
		{"equals_starts_name", `<p =x>`, `StartTag(p =x="")`,
			[]errors.Kind{errors.UnexpectedEqualsSignBeforeAttributeName}},
		{"missing_value", `<p a=>`, `StartTag(p a="")`,
			[]errors.Kind{errors.MissingAttributeValue}},
		{"quote_in_name", `<p a"b="1">`, `StartTag(p a"b="1")`,
			[]errors.Kind{errors.UnexpectedCharacterInAttributeName}},
		{"missing_whitespace", `<p a="1"b="2">`, `StartTag(p a="1" b="2")`,
			[]errors.Kind{errors.MissingWhitespaceBetweenAttributes}},
		{"unquoted_backtick", "<p a=`1>", "StartTag(p a=\"`1\")",
			[]errors.Kind{errors.UnexpectedCharacterInUnquotedAttributeValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			require.GreaterOrEqual(t, len(tokens), 2)
			assert.Equal(t, tt.want, tokens[0].String())
			assert.Equal(t, tt.kinds, errs.Kinds())
		})
	}
}

func TestTagOpenEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		kinds []errors.Kind
	}{
		{"lone_less_than", "<", []string{`Character("<")`, "EOF(1)"},
			[]errors.Kind{errors.EOFBeforeTagName}},
		{"less_than_digit", "<3", []string{`Character("<")`, `Character("3")`, "EOF(2)"},
			[]errors.Kind{errors.InvalidFirstCharacterOfTagName}},
		{"question_mark", "<?xml?>", []string{`Comment("?xml?")`, "EOF(7)"},
			[]errors.Kind{errors.UnexpectedQuestionMarkInsteadOfTagName}},
		{"empty_end_tag", "</>", []string{"EOF(3)"},
			[]errors.Kind{errors.MissingEndTagName}},
		{"end_tag_digit", "</3>", []string{`Comment("3")`, "EOF(4)"},
			[]errors.Kind{errors.InvalidFirstCharacterOfTagName}},
		{"eof_after_solidus", "</", []string{`Character("<")`, `Character("/")`, "EOF(2)"},
			[]errors.Kind{errors.EOFBeforeTagName}},
		{"eof_in_tag", "<p ", []string{"EOF(3)"},
			[]errors.Kind{errors.EOFInTag}},
		{"greater_than_in_data", "a>b", []string{`Character("a")`, `Character(">")`, `Character("b")`, "EOF(3)"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			assert.Equal(t, tt.want, summarize(tokens))
			assert.Equal(t, tt.kinds, errs.Kinds())
		})
	}
}

func TestNullCharacterHandling(t *testing.T) {
	// The data state passes NUL through; most other states substitute
	// U+FFFD.
	tokens, errs := tokenize(t, "a\x00b")
	assert.Equal(t, []string{`Character("a")`, `Character("\x00")`, `Character("b")`, "EOF(3)"}, summarize(tokens))
	assert.Equal(t, []errors.Kind{errors.UnexpectedNullCharacter}, errs.Kinds())

	tokens, errs = tokenize(t, "<p\x00>")
	assert.Equal(t, "StartTag(p�)", tokens[0].String())
	assert.Equal(t, []errors.Kind{errors.UnexpectedNullCharacter}, errs.Kinds())
}

func TestErrorOffsets(t *testing.T) {
	_, errs := tokenize(t, "<p>\x00")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, uint64(4), errs.Errors()[0].Offset)
}

func TestEndOfFileExactlyOnce(t *testing.T) {
	inputs := []string{
		"", "plain", "<p>", "<!DOCTYPE html><p>x</p>", "<!-- never closed",
		"<p", "&amp", "<![CDATA[", "</", "<script>x",
	}
	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			tokens, _ := tokenize(t, input)
			var eofs int
			for _, tok := range tokens {
				if tok.Type == EndOfFileToken {
					eofs++
				}
			}
			assert.Equal(t, 1, eofs)
			assert.Equal(t, EndOfFileToken, tokens[len(tokens)-1].Type)
		})
	}
}

func TestAttributeNamesPairwiseDistinct(t *testing.T) {
	inputs := []string{
		`<p a a a>`, `<p a="1" a="2" b a>`, `<p A a A="x">`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, _ := tokenize(t, input)
			for _, tok := range tokens {
				if tok.Type != StartTagToken && tok.Type != EndTagToken {
					continue
				}
				seen := map[string]bool{}
				for _, a := range tok.Attributes {
					name := string(a.Name)
					assert.False(t, seen[name], "duplicate attribute %q survived", name)
					seen[name] = true
				}
			}
		})
	}
}

func TestPlaintextState(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("a<b&c\x00"), sink, WithInitialState(PLAINTEXTState))
	require.NoError(t, tz.Run())

	assert.Equal(t, "a<b&c�", sink.Text())
	assert.Equal(t, []errors.Kind{errors.UnexpectedNullCharacter}, tz.Errors().Kinds())
}

func TestStepDrivesOneItemAtATime(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("ab"), sink)

	more, err := tz.Step()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 1, len(sink.Tokens()))

	for more {
		more, err = tz.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, []string{`Character("a")`, `Character("b")`, "EOF(2)"}, summarize(sink.Tokens()))

	// Step after completion stays finished.
	more, err = tz.Step()
	require.NoError(t, err)
	assert.False(t, more)
}

func TestSinkErrorIsFatal(t *testing.T) {
	rejecting := SinkFunc(func(Token) error {
		return fmt.Errorf("sink full")
	})
	tz := New(strings.NewReader("x"), rejecting)

	err := tz.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink full")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("connection reset")
}

func TestByteSourceFailureIsFatal(t *testing.T) {
	tz := New(failingReader{}, &TokenCollector{})

	err := tz.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestInvalidUTF8ReplacedAndReported(t *testing.T) {
	tokens, errs := tokenize(t, "a\x80b")

	assert.Equal(t, []string{`Character("a")`, `Character("�")`, `Character("b")`, "EOF(3)"}, summarize(tokens))
	assert.Equal(t, []errors.Kind{errors.InvalidUTF8}, errs.Kinds())
}

func TestCRLFNormalizedInTokens(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("a\r\nb\rc\nd"), sink)
	require.NoError(t, tz.Run())

	assert.Equal(t, "a\nb\nc\nd", sink.Text())
}

func TestCustomErrorSink(t *testing.T) {
	var custom errors.Collector
	sink := &TokenCollector{}
	tz := New(strings.NewReader("<!--->"), sink, WithErrorSink(&custom))
	require.NoError(t, tz.Run())

	assert.Nil(t, tz.Errors())
	assert.Equal(t, []errors.Kind{errors.AbruptClosingOfEmptyComment}, custom.Kinds())
}

func TestTagNameLowercasingProperty(t *testing.T) {
	tokens, _ := tokenize(t, "<DiV CLASS=A>x</DIV>")

	assert.Equal(t, "div", string(tokens[0].Name))
	assert.Equal(t, "div", string(tokens[2].Name))
	name := string(tokens[0].Attributes[0].Name)
	assert.Equal(t, "class", name)
	// Attribute values keep their case.
	val, _ := tokens[0].Attr("class")
	assert.Equal(t, "A", val)
}
