package core

import (
	"sort"
	"unicode/utf8"
)

// Decomposition holds the substrings, prefixes and suffixes of Input.
type Decomposition struct {
	Input      string   `json:"input"`
	Substrings []string `json:"substrings"`
	Prefixes   []string `json:"prefixes"`
	Suffixes   []string `json:"suffixes"`
}

func Decompose(s string) *Decomposition {
	return &Decomposition{
		Input:      s,
		Substrings: Substrings(s),
		Prefixes:   Prefixes(s),
		Suffixes:   Suffixes(s),
	}
}

// Substrings returns every contiguous, non-empty slice of s ordered by
// length. Slices of equal length keep their start-index order, and repeated
// values are kept.
func Substrings(s string) []string {
	runes := []rune(s)
	n := len(runes)
	result := make([]string, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			result = append(result, string(runes[i:j]))
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return utf8.RuneCountInString(result[a]) < utf8.RuneCountInString(result[b])
	})
	return result
}

// Prefixes returns s[:1] through s, shortest first.
func Prefixes(s string) []string {
	runes := []rune(s)
	result := make([]string, 0, len(runes))
	for i := 1; i <= len(runes); i++ {
		result = append(result, string(runes[:i]))
	}
	return result
}

// Suffixes returns s through its last symbol, longest first.
func Suffixes(s string) []string {
	runes := []rune(s)
	result := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		result = append(result, string(runes[i:]))
	}
	return result
}
