package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindCodes(t *testing.T) {
	// Every kind carries a code and a message; no catalog holes.
	for k := Kind(0); k < kindCount; k++ {
		assert.NotEmpty(t, k.Code(), "kind %d has no code", k)
		assert.NotEmpty(t, k.Message(), "kind %d has no message", k)
		assert.NotEqual(t, "unknown", k.Code())
	}

	assert.Equal(t, "duplicate-attribute", DuplicateAttribute.Code())
	assert.Equal(t, "eof-in-tag", EOFInTag.Code())
	assert.Equal(t, "missing-semicolon-after-character-reference", MissingSemicolonAfterCharacterReference.Code())
	assert.Equal(t, "unknown", Kind(999).Code())
}

func TestParseErrorError(t *testing.T) {
	e := New(UnexpectedNullCharacter, 17)
	assert.Equal(t, "offset 17: unexpected-null-character: unexpected U+0000 in input", e.Error())
	assert.True(t, e.IsError())
	assert.False(t, e.IsWarning())
}

func TestParseErrorJSON(t *testing.T) {
	e := New(AbruptClosingOfEmptyComment, 5)
	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abrupt-closing-of-empty-comment", decoded["code"])
	assert.Equal(t, float64(5), decoded["offset"])
	assert.Equal(t, "error", decoded["severity"])
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, s := range []Severity{Info, Warning, Error} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var back Severity
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, s, back)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	c.AcceptError(New(EOFInComment, 3))
	c.AcceptError(New(DuplicateAttribute, 9))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []Kind{EOFInComment, DuplicateAttribute}, c.Kinds())
	assert.True(t, c.Has(EOFInComment))
	assert.False(t, c.Has(NestedComment))

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestReport(t *testing.T) {
	errs := []ParseError{
		New(EOFInTag, 10),
		New(UnexpectedNullCharacter, 4),
	}

	r := NewReport(errs)
	assert.Equal(t, "error", r.Status)
	assert.Equal(t, 2, r.Summary.ErrorCount)
	assert.Equal(t, 2, r.Summary.TotalCount)

	out, err := r.FormatAsJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"eof-in-tag"`)

	empty := NewReport(nil)
	assert.Equal(t, "success", empty.Status)
}

func TestFormatForTerminal(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	out := FormatListForTerminal([]ParseError{New(NestedComment, 21)})
	assert.Contains(t, out, "error: '<!--' inside a comment")
	assert.Contains(t, out, "byte 21 (nested-comment)")
	assert.True(t, strings.Contains(out, "1 parse error(s)"))
}
