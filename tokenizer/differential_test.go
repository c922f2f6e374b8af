package tokenizer

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// event is a normalized token-stream entry, with adjacent text merged,
// used to compare this tokenizer against golang.org/x/net/html.
type event struct {
	kind string // "text", "start", "selfclosing", "end", "comment", "doctype"
	data string
}

func mergeText(events []event) []event {
	var out []event
	for _, e := range events {
		if e.kind == "text" && len(out) > 0 && out[len(out)-1].kind == "text" {
			out[len(out)-1].data += e.data
			continue
		}
		out = append(out, e)
	}
	return out
}

func attrString(name string, attrs [][2]string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%q", a[0], a[1])
	}
	return sb.String()
}

func ourEvents(t *testing.T, input string) []event {
	t.Helper()
	sink := &TokenCollector{}
	tz := New(strings.NewReader(input), sink)
	require.NoError(t, tz.Run())

	var events []event
	for _, tok := range sink.Tokens() {
		switch tok.Type {
		case CharacterToken:
			events = append(events, event{"text", string(tok.Char)})
		case StartTagToken:
			kind := "start"
			if tok.SelfClosing {
				kind = "selfclosing"
			}
			var attrs [][2]string
			for _, a := range tok.Attributes {
				attrs = append(attrs, [2]string{string(a.Name), string(a.Value)})
			}
			events = append(events, event{kind, attrString(string(tok.Name), attrs)})
		case EndTagToken:
			events = append(events, event{"end", string(tok.Name)})
		case CommentToken:
			events = append(events, event{"comment", string(tok.Data)})
		case DoctypeToken:
			events = append(events, event{"doctype", string(tok.Name)})
		}
	}
	return mergeText(events)
}

func xnetEvents(t *testing.T, input string) []event {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(input))

	var events []event
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			require.ErrorIs(t, z.Err(), io.EOF)
			return mergeText(events)
		}
		tok := z.Token()
		switch tt {
		case html.TextToken:
			events = append(events, event{"text", tok.Data})
		case html.StartTagToken, html.SelfClosingTagToken:
			kind := "start"
			if tt == html.SelfClosingTagToken {
				kind = "selfclosing"
			}
			var attrs [][2]string
			for _, a := range tok.Attr {
				attrs = append(attrs, [2]string{a.Key, a.Val})
			}
			events = append(events, event{kind, attrString(tok.Data, attrs)})
		case html.EndTagToken:
			events = append(events, event{"end", tok.Data})
		case html.CommentToken:
			events = append(events, event{"comment", tok.Data})
		case html.DoctypeToken:
			events = append(events, event{"doctype", tok.Data})
		}
	}
}

// TestDifferentialAgainstXNetHTML cross-checks well-formed documents
// against the x/net/html tokenizer. Inputs stay inside the territory
// where both tokenizers agree by construction: valid markup, no parse
// errors.
func TestDifferentialAgainstXNetHTML(t *testing.T) {
	inputs := []string{
		`<!DOCTYPE html><html><head><title>t</title></head><body>x</body></html>`,
		`<p class="a" id="b">x &amp; y</p>`,
		`<ul><li>one</li><li>two</li></ul>`,
		`<br/><img src="a.png" alt="a b">`,
		`<!--note--><div data-x="1">&lt;tag&gt;</div>`,
		`<a href="?x=1&y=2">link</a>`,
		`<script>var s = "<"; if (a && b) go();</script>after`,
		`<style>p > a { color: red }</style>`,
		`<textarea>&amp; <not a tag></textarea>`,
		`<pre>
line &#x31;
</pre>`,
		`<span>☃ &#9731;</span>`,
	}

	for _, input := range inputs {
		t.Run(input[:min(len(input), 30)], func(t *testing.T) {
			assert.Equal(t, xnetEvents(t, input), ourEvents(t, input))
		})
	}
}
