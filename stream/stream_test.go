package stream

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads every item up to and including the first EOF item.
func drain(t *testing.T, r *Reader) []Item {
	t.Helper()
	var items []Item
	for {
		it := r.Next()
		items = append(items, it)
		if it.EOF {
			return items
		}
	}
}

// runes extracts the decoded code points, dropping the EOF item.
func runes(items []Item) []rune {
	var rs []rune
	for _, it := range items {
		if !it.EOF {
			rs = append(rs, it.R)
		}
	}
	return rs
}

func TestASCII(t *testing.T) {
	r := New(strings.NewReader("ab"))
	items := drain(t, r)

	require.Len(t, items, 3)
	assert.Equal(t, Item{R: 'a', Offset: 1}, items[0])
	assert.Equal(t, Item{R: 'b', Offset: 2}, items[1])
	assert.Equal(t, Item{EOF: true, Offset: 2}, items[2])
}

func TestNewlineNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"lf", "a\nb", []rune{'a', '\n', 'b'}},
		{"cr", "a\rb", []rune{'a', '\n', 'b'}},
		{"crlf", "a\r\nb", []rune{'a', '\n', 'b'}},
		{"crcr", "a\r\rb", []rune{'a', '\n', '\n', 'b'}},
		{"crlfcr", "\r\n\r", []rune{'\n', '\n'}},
		{"lflf", "\n\n", []rune{'\n', '\n'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := drain(t, New(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, runes(items))
		})
	}
}

func TestCRLFOffsets(t *testing.T) {
	// The LF of a CRLF pair is swallowed, so the item after the pair
	// accounts for both bytes.
	items := drain(t, New(strings.NewReader("\r\nx")))
	require.Len(t, items, 3)
	assert.Equal(t, Item{R: '\n', Offset: 1}, items[0])
	assert.Equal(t, Item{R: 'x', Offset: 3}, items[1])
	assert.Equal(t, Item{EOF: true, Offset: 3}, items[2])
}

func TestUTF8Decoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"two_byte", "é", []rune{0xE9}},
		{"three_byte", "€", []rune{0x20AC}},
		{"four_byte", "\U0001D538", []rune{0x1D538}},
		{"mixed", "a©b", []rune{'a', 0xA9, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := drain(t, New(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, runes(items))
		})
	}
}

func TestUTF8Offsets(t *testing.T) {
	// "€" is three bytes; the following 'x' lands at offset 4.
	items := drain(t, New(strings.NewReader("€x")))
	require.Len(t, items, 3)
	assert.Equal(t, Item{R: 0x20AC, Offset: 3}, items[0])
	assert.Equal(t, Item{R: 'x', Offset: 4}, items[1])
}

func TestInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []rune
	}{
		{"stray_continuation", []byte{'a', 0x80, 'b'}, []rune{'a', ReplacementChar, 'b'}},
		{"overlong", []byte{0xC0, 0xAF}, []rune{ReplacementChar, ReplacementChar}},
		{"truncated_at_eof", []byte{0xE2, 0x82}, []rune{ReplacementChar}},
		{"lead_then_ascii", []byte{0xE2, 'x'}, []rune{ReplacementChar, 'x'}},
		{"surrogate_encoding", []byte{0xED, 0xA0, 0x80}, []rune{ReplacementChar}},
		{"beyond_unicode", []byte{0xF5, 0x80, 0x80, 0x80}, []rune{ReplacementChar, ReplacementChar, ReplacementChar, ReplacementChar}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(strings.NewReader(string(tt.input)))
			var reported int
			r.SetInvalidUTF8Func(func(offset uint64) { reported++ })

			items := drain(t, r)
			assert.Equal(t, tt.want, runes(items))
			assert.Greater(t, reported, 0)
		})
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	r := New(strings.NewReader("x"))
	drain(t, r)

	for i := 0; i < 3; i++ {
		it := r.Next()
		assert.True(t, it.EOF)
		assert.Equal(t, uint64(1), it.Offset)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestFatalReadError(t *testing.T) {
	r := New(failingReader{})
	it := r.Next()

	assert.True(t, it.EOF)
	require.Error(t, r.Err())
	assert.Contains(t, r.Err().Error(), "broken pipe")
}
