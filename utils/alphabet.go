package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/antlabs/strsim"
)

// AutoSep separates the class letters from the literal extras in an auto
// alphabet, e.g. "an§_-" is a-z, 0-9, "_" and "-".
const AutoSep = "§"

var ErrUnknownPreset = errors.New("unknown alphabet preset")

var presets = map[string]string{
	"binary": "01",
	"dna":    "ACGT",
	"lower":  Alphabet,
	"upper":  strings.ToUpper(Alphabet),
	"digits": Number,
	"hex":    Number + "abcdef",
	"ab":     "ab",
	"abc":    "abc",
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the symbols of a named alphabet. Unknown names are
// answered with the closest known name.
func Preset(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if symbols, ok := presets[name]; ok {
		return symbols, nil
	}
	if best := SuggestPreset(name); best != "" {
		return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownPreset, name, best)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// SuggestPreset returns the preset name most similar to name, or "" when
// nothing is similar enough.
func SuggestPreset(name string) string {
	if name == "" {
		return ""
	}
	var best string
	var bestScore float64
	for _, candidate := range PresetNames() {
		score := strsim.Compare(name, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < 0.4 {
		return ""
	}
	return best
}

// ExpandAuto expands the auto alphabet notation "<classes>§<extras>" where
// classes may hold "a" (a-z), "A" (A-Z) and "n" (0-9). Anything without the
// separator is returned unchanged.
func ExpandAuto(expr string) string {
	parts := strings.SplitN(expr, AutoSep, 2)
	if len(parts) < 2 {
		return expr
	}

	var autolist string
	inter := parts[0]
	if strings.Contains(inter, "a") {
		autolist += Alphabet
	}
	if strings.Contains(inter, "A") {
		autolist += strings.ToUpper(Alphabet)
	}
	if strings.Contains(inter, "n") {
		autolist += Number
	}

	return autolist + parts[1]
}
