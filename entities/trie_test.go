package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	require.Equal(t, 2231, Count)

	for i := range rawTable {
		e := &rawTable[i]
		assert.True(t, strings.HasPrefix(e.Name, "&"), "name %q must start with '&'", e.Name)
		assert.NotZero(t, e.First, "name %q must have a replacement", e.Name)
	}
}

func TestLookupExact(t *testing.T) {
	tests := []struct {
		name  string
		runes []rune
	}{
		{"&amp;", []rune{'&'}},
		{"&AMP", []rune{'&'}},
		{"&lt;", []rune{'<'}},
		{"&copy;", []rune{'©'}},
		{"&ngE;", []rune{'≧', '̸'}}, // two-code-point expansion
		{"&CounterClockwiseContourIntegral;", []rune{'∳'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Lookup([]byte(tt.name))
			require.True(t, ok)
			require.NotNil(t, n.Entity())
			assert.Equal(t, tt.name, n.Entity().Name)
			assert.Equal(t, tt.runes, n.Entity().Runes())
		})
	}
}

func TestLookupPrefixWithoutTerminal(t *testing.T) {
	// "&Ar" is a valid prefix of several names but not an entity itself.
	n, ok := Lookup([]byte("&Ar"))
	require.True(t, ok)
	assert.Nil(t, n.Entity())
	assert.True(t, n.CanExtend())
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup([]byte("&zzqx"))
	assert.False(t, ok)

	_, ok = Lookup([]byte("x"))
	assert.False(t, ok)
}

func TestSemicolonVariants(t *testing.T) {
	// "&not" is both a full entity and a prefix of "&notin;".
	n, ok := Lookup([]byte("&not"))
	require.True(t, ok)
	require.NotNil(t, n.Entity())
	assert.Equal(t, []rune{'¬'}, n.Entity().Runes())
	assert.True(t, n.CanExtend())

	n, ok = Lookup([]byte("&notin;"))
	require.True(t, ok)
	require.NotNil(t, n.Entity())
	assert.Equal(t, []rune{'∉'}, n.Entity().Runes())
}

func TestStepMatchesLookup(t *testing.T) {
	n := Root()
	for _, b := range []byte("&frac12;") {
		var ok bool
		n, ok = n.Step(b)
		require.True(t, ok)
	}
	require.NotNil(t, n.Entity())
	assert.Equal(t, []rune{'½'}, n.Entity().Runes())
	assert.False(t, n.CanExtend())

	looked, ok := Lookup([]byte("&frac12;"))
	require.True(t, ok)
	assert.Equal(t, looked, n)
}
