package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	symbols, err := Preset("binary")
	require.NoError(t, err)
	assert.Equal(t, "01", symbols)

	symbols, err = Preset(" DNA ")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", symbols)
}

func TestPresetSuggestion(t *testing.T) {
	_, err := Preset("binar")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), `did you mean "binary"`)

	assert.Equal(t, "digits", SuggestPreset("digit"))
	assert.Equal(t, "", SuggestPreset(""))
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "hex")
}

func TestExpandAuto(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"abc", "abc"},
		{"n§", Number},
		{"a§_-", Alphabet + "_-"},
		{"An§", "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + Number},
		{"§xy", "xy"},
		{"n§§", Number + "§"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandAuto(tt.expr))
		})
	}
}
