package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlscan/htmlscan/errors"
)

// tokenizeFragment drives the tokenizer from a non-data initial state, as
// a tree builder would after seeing the corresponding start tag.
func tokenizeFragment(t *testing.T, input string, state State, lastStartTag string) ([]Token, *errors.Collector) {
	t.Helper()
	sink := &TokenCollector{}
	tz := New(strings.NewReader(input), sink,
		WithInitialState(state), WithLastStartTag(lastStartTag))
	require.NoError(t, tz.Run())
	return sink.Tokens(), tz.Errors()
}

func TestRCDATA(t *testing.T) {
	t.Run("appropriate_end_tag", func(t *testing.T) {
		tokens, _ := tokenizeFragment(t, "a<b</title>", RCDATAState, "title")
		assert.Equal(t, []string{
			`Character("a")`, `Character("<")`, `Character("b")`,
			"EndTag(title)", "EOF(11)",
		}, summarize(tokens))
	})

	t.Run("inappropriate_end_tag_replayed_as_text", func(t *testing.T) {
		tokens, _ := tokenizeFragment(t, "</div>", RCDATAState, "title")
		assert.Equal(t, []string{
			`Character("<")`, `Character("/")`, `Character("d")`,
			`Character("i")`, `Character("v")`, `Character(">")`, "EOF(6)",
		}, summarize(tokens))
	})

	t.Run("end_tag_case_insensitive_by_lowercasing", func(t *testing.T) {
		tokens, _ := tokenizeFragment(t, "</TITLE>", RCDATAState, "title")
		assert.Equal(t, []string{"EndTag(title)", "EOF(8)"}, summarize(tokens))
	})

	t.Run("end_tag_with_attributes", func(t *testing.T) {
		tokens, _ := tokenizeFragment(t, `</title class="x">`, RCDATAState, "title")
		assert.Equal(t, `EndTag(title class="x")`, tokens[0].String())
	})

	t.Run("no_pending_start_tag", func(t *testing.T) {
		// Without a remembered start tag the predicate is false.
		tokens, _ := tokenizeFragment(t, "</title>", RCDATAState, "")
		assert.Equal(t, `Character("<")`, tokens[0].String())
	})
}

func TestRAWTEXT(t *testing.T) {
	tokens, _ := tokenizeFragment(t, "x&amp;y</style>", RAWTEXTState, "style")

	// RAWTEXT never resolves character references.
	var text strings.Builder
	for _, tok := range tokens {
		if tok.Type == CharacterToken {
			text.WriteRune(tok.Char)
		}
	}
	assert.Equal(t, "x&amp;y", text.String())
	assert.Equal(t, "EndTag(style)", tokens[len(tokens)-2].String())
}

func TestScriptDataEscaped(t *testing.T) {
	// "<!--" inside script data enters the escaped flavor; everything is
	// still emitted as characters.
	input := "<!--x--></script>"
	tokens, errs := tokenizeFragment(t, input, ScriptDataState, "script")

	var text strings.Builder
	for _, tok := range tokens {
		if tok.Type == CharacterToken {
			text.WriteRune(tok.Char)
		}
	}
	assert.Equal(t, "<!--x-->", text.String())
	assert.Equal(t, "EndTag(script)", tokens[len(tokens)-2].String())
	assert.Equal(t, 0, errs.Len())
}

func TestScriptDataDoubleEscaped(t *testing.T) {
	// A nested "<script>" inside an escaped block flips to the
	// double-escaped flavor, where "</script>" is text that merely drops
	// back to the escaped flavor; only after "-->" does the real end tag
	// terminate the element.
	input := "<!--<script>a</script>x--></script>"
	tokens, errs := tokenizeFragment(t, input, ScriptDataState, "script")

	var text strings.Builder
	for _, tok := range tokens {
		if tok.Type == CharacterToken {
			text.WriteRune(tok.Char)
		}
	}
	assert.Equal(t, "<!--<script>a</script>x-->", text.String())
	assert.Equal(t, "EndTag(script)", tokens[len(tokens)-2].String())
	assert.Equal(t, 0, errs.Len())
}

func TestScriptDataEOFInEscaped(t *testing.T) {
	_, errs := tokenizeFragment(t, "<!--x", ScriptDataState, "script")
	assert.Equal(t, []errors.Kind{errors.EOFInScriptHTMLCommentLikeText}, errs.Kinds())
}

func TestComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"simple", "<!--hello-->", `Comment("hello")`, nil},
		{"dashes_inside", "<!--a-b--c-->", `Comment("a-b--c")`, nil},
		{"dash_at_end_of_data", "<!--a--->", `Comment("a-")`, nil},
		{"less_than_inside", "<!--a<b-->", `Comment("a<b")`, nil},
		{"nested_comment_flagged", "<!--<!--x-->", `Comment("<!--x")`,
			[]errors.Kind{errors.NestedComment}},
		{"incorrectly_closed", "<!--x--!>", `Comment("x")`,
			[]errors.Kind{errors.IncorrectlyClosedComment}},
		{"bang_absorbed", "<!--x--!y-->", `Comment("x--!y")`, nil},
		{"bogus_from_bad_opener", "<!x>", `Comment("x")`,
			[]errors.Kind{errors.IncorrectlyOpenedComment}},
		{"bogus_from_single_dash", "<!-x>", `Comment("-x")`,
			[]errors.Kind{errors.IncorrectlyOpenedComment}},
		{"bogus_from_doctyp_misspelling", "<!DOCTYPX>", `Comment("DOCTYPX")`,
			[]errors.Kind{errors.IncorrectlyOpenedComment}},
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

func TestCommentEOF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<!--", `Comment("")`},
		{"<!--a", `Comment("a")`},
		{"<!--a-", `Comment("a")`},
		{"<!--a--", `Comment("a")`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.input)
			assert.Equal(t, tt.want, tokens[0].String())
			assert.Equal(t, []errors.Kind{errors.EOFInComment}, errs.Kinds())
			assert.Equal(t, EndOfFileToken, tokens[1].Type)
		})
	}
}

func TestDoctypeVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kinds []errors.Kind
	}{
		{"html5", "<!DOCTYPE html>", "DOCTYPE(html)", nil},
		{"lowercase_keyword", "<!doctype html>", "DOCTYPE(html)", nil},
		{"name_lowercased", "<!DOCTYPE HTML>", "DOCTYPE(html)", nil},
		{"public", `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN">`,
			`DOCTYPE(html public="-//W3C//DTD HTML 4.01//EN")`, nil},
		{"public_and_system", `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
			`DOCTYPE(html public="-//W3C//DTD XHTML 1.0 Strict//EN" system="http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd")`, nil},
		{"system_only", `<!DOCTYPE html SYSTEM "about:legacy-compat">`,
			`DOCTYPE(html system="about:legacy-compat")`, nil},
		{"system_single_quoted", `<!DOCTYPE html SYSTEM 'about:legacy-compat'>`,
			`DOCTYPE(html system="about:legacy-compat")`, nil},
		{"missing_name", "<!DOCTYPE>", "DOCTYPE( quirks)",
			[]errors.Kind{errors.MissingDoctypeName}},
		{"missing_name_after_space", "<!DOCTYPE >", "DOCTYPE( quirks)",
			[]errors.Kind{errors.MissingDoctypeName}},
		{"no_space_before_name", "<!DOCTYPEhtml>", "DOCTYPE(html)",
			[]errors.Kind{errors.MissingWhitespaceBeforeDoctypeName}},
		{"bad_keyword", "<!DOCTYPE html PUBLIK>", "DOCTYPE(html quirks)",
			[]errors.Kind{errors.InvalidCharacterSequenceAfterDoctypeName}},
		{"missing_public_quote", "<!DOCTYPE html PUBLIC x>", "DOCTYPE(html quirks)",
			[]errors.Kind{errors.MissingQuoteBeforeDoctypePublicIdentifier}},
		{"missing_public_id", "<!DOCTYPE html PUBLIC>", "DOCTYPE(html quirks)",
			[]errors.Kind{errors.MissingDoctypePublicIdentifier}},
		{"abrupt_public_id", `<!DOCTYPE html PUBLIC "x>`, `DOCTYPE(html public="x" quirks)`,
			[]errors.Kind{errors.AbruptDoctypePublicIdentifier}},
		{"no_space_after_public", `<!DOCTYPE html PUBLIC"x">`, `DOCTYPE(html public="x")`,
			[]errors.Kind{errors.MissingWhitespaceAfterDoctypePublicKeyword}},
		{"no_space_between_ids", `<!DOCTYPE html PUBLIC "x""y">`, `DOCTYPE(html public="x" system="y")`,
			[]errors.Kind{errors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers}},
		{"junk_after_system", `<!DOCTYPE html SYSTEM "x" y>`, `DOCTYPE(html system="x")`,
			[]errors.Kind{errors.UnexpectedCharacterAfterDoctypeSystemIdentifier}},
		{"abrupt_system_id", `<!DOCTYPE html SYSTEM "x>`, `DOCTYPE(html system="x" quirks)`,
			[]errors.Kind{errors.AbruptDoctypeSystemIdentifier}},
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

func TestDoctypeEOF(t *testing.T) {
	// Any EOF inside a DOCTYPE forces quirks mode on the emitted token.
	inputs := []string{
		"<!DOCTYPE", "<!DOCTYPE ", "<!DOCTYPE html", "<!DOCTYPE html ",
		`<!DOCTYPE html PUBLIC`, `<!DOCTYPE html PUBLIC "x`, `<!DOCTYPE html SYSTEM "x" `,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, errs := tokenize(t, input)
			require.GreaterOrEqual(t, len(tokens), 2)
			require.Equal(t, DoctypeToken, tokens[0].Type)
			assert.True(t, tokens[0].ForceQuirks)
			assert.True(t, errs.Has(errors.EOFInDoctype))
		})
	}
}

func TestBogusDoctypeDropsCharacters(t *testing.T) {
	tokens, errs := tokenize(t, "<!DOCTYPE html BADSTUFF junk junk>")

	assert.Equal(t, "DOCTYPE(html quirks)", tokens[0].String())
	assert.Equal(t, []errors.Kind{errors.InvalidCharacterSequenceAfterDoctypeName}, errs.Kinds())
}

func TestCDATAInForeignContent(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("<![CDATA[a]b]]>x"), sink, WithForeignContent(true))
	require.NoError(t, tz.Run())

	assert.Equal(t, "a]bx", sink.Text())
	assert.Equal(t, 0, tz.Errors().Len())
}

func TestCDATAInHTMLContentBecomesComment(t *testing.T) {
	tokens, errs := tokenize(t, "<![CDATA[x]]>")

	assert.Equal(t, `Comment("[CDATA[x]]")`, tokens[0].String())
	assert.Equal(t, []errors.Kind{errors.CdataInHTMLContent}, errs.Kinds())
}

func TestCDATAEOF(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("<![CDATA[x"), sink, WithForeignContent(true))
	require.NoError(t, tz.Run())

	assert.Equal(t, "x", sink.Text())
	assert.Equal(t, []errors.Kind{errors.EOFInCdata}, tz.Errors().Kinds())
}

func TestCDATABracketRuns(t *testing.T) {
	sink := &TokenCollector{}
	tz := New(strings.NewReader("<![CDATA[a]]]>"), sink, WithForeignContent(true))
	require.NoError(t, tz.Run())

	// "]]]>" is one literal ']' followed by the "]]>" terminator.
	assert.Equal(t, "a]", sink.Text())
}

func TestSelfClosingDoesNotEstablishEndTag(t *testing.T) {
	// A self-closing start tag never becomes the "appropriate" end tag.
	tokens, _ := tokenize(t, "<title/></title>")

	assert.Equal(t, "StartTag(title self-closing)", tokens[0].String())
	assert.Equal(t, "EndTag(title)", tokens[1].String())
}

func TestUnexpectedSolidusRecovers(t *testing.T) {
	tokens, errs := tokenize(t, "<p / id=x>")

	assert.Equal(t, `StartTag(p id="x")`, tokens[0].String())
	assert.Equal(t, []errors.Kind{errors.UnexpectedSolidusInTag}, errs.Kinds())
}
