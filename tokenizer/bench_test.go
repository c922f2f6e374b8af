package tokenizer

import (
	"strings"
	"testing"

	"github.com/htmlscan/htmlscan/entities"
)

// generateDocument builds a synthetic document with n repeated rows of
// markup, text, and character references.
func generateDocument(n int) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><body>\n")
	for i := 0; i < n; i++ {
		sb.WriteString(`<div class="row" data-idx="1"><a href="/a?b=1&amp;c=2">link &copy; text</a></div>` + "\n")
	}
	sb.WriteString("</body></html>\n")
	return sb.String()
}

// discard is a sink that drops every token.
var discard = SinkFunc(func(Token) error { return nil })

func BenchmarkTokenizer1000Rows(b *testing.B) {
	source := generateDocument(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tz := New(strings.NewReader(source), discard)
		if err := tz.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEntityLookup(b *testing.B) {
	names := [][]byte{
		[]byte("&amp;"), []byte("&lt;"), []byte("&copy;"),
		[]byte("&notin;"), []byte("&CounterClockwiseContourIntegral;"),
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, name := range names {
			if _, ok := entities.Lookup(name); !ok {
				b.Fatal("missing entity")
			}
		}
	}
}

func BenchmarkScriptHeavyDocument(b *testing.B) {
	source := "<script>" + strings.Repeat(`var s = "<div>"; if (a && b) go();`, 500) + "</script>"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tz := New(strings.NewReader(source), discard)
		if err := tz.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
