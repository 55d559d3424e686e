package core

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "a", []string{"a"}},
		{"two symbols", "ab", []string{"a", "b", "ab"}},
		{"three symbols", "abc", []string{"a", "b", "c", "ab", "bc", "abc"}},
		{"repeats kept", "aa", []string{"a", "a", "aa"}},
		{"multibyte", "añ", []string{"a", "ñ", "añ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substrings(tt.input))
		})
	}
}

func TestSubstringsProperties(t *testing.T) {
	for _, s := range []string{"", "x", "abab", "hello world", "σΣε!"} {
		got := Substrings(s)
		n := utf8.RuneCountInString(s)
		require.Len(t, got, n*(n+1)/2, s)

		runes := []rune(s)
		prev := 0
		for _, sub := range got {
			l := utf8.RuneCountInString(sub)
			assert.GreaterOrEqual(t, l, prev, "not sorted by length for %q", s)
			prev = l
			assert.Contains(t, string(runes), sub)
		}
	}
}

func TestPrefixesAndSuffixes(t *testing.T) {
	assert.Equal(t, []string{"a", "ab", "abc"}, Prefixes("abc"))
	assert.Equal(t, []string{"abc", "bc", "c"}, Suffixes("abc"))
	assert.Empty(t, Prefixes(""))
	assert.Empty(t, Suffixes(""))

	s := "lenguaje"
	prefixes := Prefixes(s)
	require.Len(t, prefixes, len(s))
	for i, p := range prefixes {
		assert.Equal(t, i+1, len(p))
	}
	assert.Equal(t, s, prefixes[len(prefixes)-1])

	suffixes := Suffixes(s)
	require.Len(t, suffixes, len(s))
	assert.Equal(t, s, suffixes[0])
	assert.Equal(t, "e", suffixes[len(suffixes)-1])
}

func TestDecomposeIsRepeatable(t *testing.T) {
	first := Decompose("abba")
	second := Decompose("abba")
	assert.Equal(t, first, second)
	assert.Equal(t, "abba", first.Input)
	assert.Len(t, first.Substrings, 10)
}
