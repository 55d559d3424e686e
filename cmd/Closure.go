package cmd

import (
	"fmt"
	"strings"

	"Kleene/core"
	"Kleene/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ClosureCmd represents the Closure command
var ClosureCmd = &cobra.Command{
	Use:     "Closure",
	Aliases: []string{"closure", "kleene"},
	Short:   "Kleene and positive closure of an alphabet",
	Long: `Generates every string over the alphabet up to the maximum length.

The alphabet is taken symbol by symbol and repeated symbols are kept. It may
be written literally (-a abc), as classes plus extras (-a "an§_": a-z, 0-9
and "_"), or chosen by name (-p binary).`,
	Annotations: map[string]string{"default_output": core.DefaultClosureFile},
	RunE:        StartClosure,
}

func init() {
	rootCmd.AddCommand(ClosureCmd)

	ClosureCmd.Flags().StringP("alphabet", "a", "", "alphabet symbols, no separators")
	ClosureCmd.Flags().StringP("preset", "p", "", "named alphabet ("+strings.Join(utils.PresetNames(), ", ")+")")
	ClosureCmd.Flags().IntP("length", "l", 3, fmt.Sprintf("maximum length, 1 to %d", MaxLengthLimit))
	ClosureCmd.Flags().StringP("output", "o", "", "write the results to this file")
	ClosureCmd.Flags().BoolP("save", "", false, "write the results to "+core.DefaultClosureFile)
	ClosureCmd.Flags().BoolP("quote", "q", false, "quote every item")
}

func StartClosure(cmd *cobra.Command, args []string) error {
	opts, err := baseOptions(cmd)
	if err != nil {
		return err
	}

	alphabet, err := ParseAlphabet(cmd)
	if err != nil {
		return err
	}

	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return fmt.Errorf("invalid value for length: %w", err)
	}
	if !cmd.Flags().Changed("length") {
		length = viper.GetInt("closure.length")
	}
	if length < 1 || length > MaxLengthLimit {
		return fmt.Errorf("%w: length must be between 1 and %d, got %d", core.ErrInvalidInput, MaxLengthLimit, length)
	}

	_, err = core.ClosureTask(opts, alphabet, length)
	return err
}

// ParseAlphabet resolves --preset and --alphabet. With both set the
// alphabet symbols follow the preset ones.
func ParseAlphabet(cmd *cobra.Command) (string, error) {
	alphabet, err := cmd.Flags().GetString("alphabet")
	if err != nil {
		return "", fmt.Errorf("invalid value for alphabet: %w", err)
	}
	alphabet = utils.ExpandAuto(strings.TrimSpace(alphabet))

	preset, err := cmd.Flags().GetString("preset")
	if err != nil {
		return "", fmt.Errorf("invalid value for preset: %w", err)
	}
	if preset == "" {
		return alphabet, nil
	}

	symbols, err := utils.Preset(preset)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return symbols + alphabet, nil
}
