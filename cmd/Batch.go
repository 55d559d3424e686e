package cmd

import (
	"fmt"
	"os"

	"Kleene/core"
	"Kleene/utils"

	"github.com/spf13/cobra"
)

// BatchCmd represents the Batch command
var BatchCmd = &cobra.Command{
	Use:         "Batch",
	Aliases:     []string{"batch"},
	Short:       "decompose every line of a file",
	Long:        `Decomposes each non-blank line of the file given with -f, or of stdin, on a pool of workers. Reports keep the input order.`,
	Annotations: map[string]string{"default_output": "resultados_lote.txt"},
	RunE:        StartBatch,
}

func init() {
	rootCmd.AddCommand(BatchCmd)

	BatchCmd.Flags().StringP("file", "f", "", "strings from file, one per line")
	BatchCmd.Flags().StringP("output", "o", "", "write the results to this file")
	BatchCmd.Flags().BoolP("save", "", false, "write the results to resultados_lote.txt")
	BatchCmd.Flags().BoolP("quote", "q", true, "quote every item")
	BatchCmd.Flags().IntP("Thread", "t", 4, "the size of the worker pool")
}

func StartBatch(cmd *cobra.Command, args []string) error {
	opts, err := baseOptions(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("Thread") {
		opts.Thread, err = cmd.Flags().GetInt("Thread")
		if err != nil {
			return fmt.Errorf("invalid value for Thread: %w", err)
		}
	}

	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid value for file: %w", err)
	}

	var inputs []string
	if file != "" {
		lines, err := utils.ReadLines(file)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", core.ErrIOFailure, file, err)
		}
		inputs = append(inputs, lines...)
	} else if utils.HasStdin() {
		lines, err := utils.ReadStdin(os.Stdin)
		if err != nil {
			return fmt.Errorf("%w: read stdin: %v", core.ErrIOFailure, err)
		}
		inputs = append(inputs, lines...)
	}

	_, err = core.BatchTask(maincontext, opts, inputs)
	return err
}
