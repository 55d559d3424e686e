package cmd

import (
	"fmt"
	"os"

	"Kleene/core"
	"Kleene/utils"

	"github.com/spf13/cobra"
)

// DecomposeCmd represents the Decompose command
var DecomposeCmd = &cobra.Command{
	Use:         "Decompose",
	Aliases:     []string{"decompose", "sub"},
	Short:       "substrings, prefixes and suffixes of a string",
	Long:        `Prints every substring (shortest first), prefix and suffix of the string given with -s or on stdin.`,
	Annotations: map[string]string{"default_output": core.DefaultDecomposeFile},
	RunE:        StartDecompose,
}

func init() {
	rootCmd.AddCommand(DecomposeCmd)

	DecomposeCmd.Flags().StringP("string", "s", "", "the string to decompose")
	DecomposeCmd.Flags().StringP("output", "o", "", "write the results to this file")
	DecomposeCmd.Flags().BoolP("save", "", false, "write the results to "+core.DefaultDecomposeFile)
	DecomposeCmd.Flags().BoolP("quote", "q", true, "quote every item")
}

func StartDecompose(cmd *cobra.Command, args []string) error {
	opts, err := baseOptions(cmd)
	if err != nil {
		return err
	}

	input, err := cmd.Flags().GetString("string")
	if err != nil {
		return fmt.Errorf("invalid value for string: %w", err)
	}

	if !cmd.Flags().Changed("string") && utils.HasStdin() {
		lines, err := utils.ReadStdin(os.Stdin)
		if err != nil {
			return fmt.Errorf("%w: read stdin: %v", core.ErrIOFailure, err)
		}
		if len(lines) > 0 {
			input = lines[0]
		}
	}

	_, err = core.DecomposeTask(opts, input)
	return err
}
