package tokenizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// dumpTokens renders a token stream one line per token, coalescing runs
// of character tokens into Text(...) lines. This is the format the txtar
// corpus expectations use.
func dumpTokens(tokens []Token) string {
	var sb, text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			fmt.Fprintf(&sb, "Text(%q)\n", text.String())
			text.Reset()
		}
	}
	for _, tok := range tokens {
		if tok.Type == CharacterToken {
			text.WriteRune(tok.Char)
			continue
		}
		flush()
		if tok.Type == EndOfFileToken {
			sb.WriteString("EOF\n")
			continue
		}
		sb.WriteString(tok.String() + "\n")
	}
	flush()
	return sb.String()
}

func TestTokenizerCorpus(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no txtar corpus files found in testdata")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)
			archive := txtar.Parse(data)

			var input, wantTokens, wantErrors string
			for _, f := range archive.Files {
				switch f.Name {
				case "input.html":
					// Drop the trailing newline the archive format adds.
					input = strings.TrimSuffix(string(f.Data), "\n")
				case "tokens.txt":
					wantTokens = strings.TrimRight(string(f.Data), "\n")
				case "errors.txt":
					wantErrors = strings.TrimRight(string(f.Data), "\n")
				}
			}
			require.NotEmpty(t, input, "archive has no input.html")
			require.NotEmpty(t, wantTokens, "archive has no tokens.txt")

			tokens, errs := tokenize(t, input)
			got := strings.TrimRight(dumpTokens(tokens), "\n")
			require.Equal(t, wantTokens, got)

			var codes []string
			for _, e := range errs.Errors() {
				codes = append(codes, e.Kind.Code())
			}
			require.Equal(t, wantErrors, strings.Join(codes, "\n"))
		})
	}
}
