package core

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"Kleene/utils"

	"go.uber.org/zap"
)

// DecomposeTask decomposes input, prints the report and, when
// opts.Output is set, writes it there. A failed write still returns the
// report.
func DecomposeTask(opts Options, input string) (*Report, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		PrintWarning(opts.stderr(), "please enter a string")
		Logger.Warn("decompose called with blank input")
		return nil, fmt.Errorf("%w: string is blank", ErrEmptyInput)
	}

	Logger.Info("decompose", zap.String("input", input))
	r := Decompose(input).Report(opts.Quote)
	return r, emit(opts, r)
}

// ClosureTask generates the closures of alphabet up to maxLen and handles
// them like DecomposeTask.
func ClosureTask(opts Options, alphabet string, maxLen int) (*Report, error) {
	alphabet = strings.TrimSpace(alphabet)
	if alphabet == "" {
		PrintWarning(opts.stderr(), "please enter an alphabet")
		Logger.Warn("closure called with blank alphabet")
		return nil, fmt.Errorf("%w: alphabet is blank", ErrEmptyInput)
	}

	size := ClosureSize(utf8.RuneCountInString(alphabet), maxLen)
	if opts.WarnSize > 0 && size > opts.WarnSize {
		PrintWarning(opts.stderr(), "generating %d strings, this may take a while", size)
		Logger.Warn("large closure", zap.Uint64("size", size), zap.Uint64("warn_size", opts.WarnSize))
	}

	c, err := Closures(alphabet, maxLen)
	if err != nil {
		Logger.Error("closure rejected", zap.String("alphabet", alphabet), zap.Int("max_length", maxLen), zap.Error(err))
		return nil, err
	}

	Logger.Info("closure",
		zap.String("alphabet", alphabet),
		zap.Int("max_length", maxLen),
		zap.Int("positive", len(c.Positive)))
	r := c.Report(opts.Quote)
	return r, emit(opts, r)
}

// BatchTask decomposes every input on opts.Thread workers.
func BatchTask(ctx context.Context, opts Options, inputs []string) ([]*Report, error) {
	var cleaned []string
	for _, in := range inputs {
		if in = strings.TrimSpace(in); in != "" {
			cleaned = append(cleaned, in)
		}
	}
	if len(cleaned) == 0 {
		PrintWarning(opts.stderr(), "no strings to decompose")
		return nil, fmt.Errorf("%w: batch has no strings", ErrEmptyInput)
	}

	var progress = opts.stderr()
	if opts.Noconsole {
		progress = nil
	}
	decs, err := DecomposeBatch(ctx, cleaned, opts.Thread, progress)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, len(decs))
	for i, d := range decs {
		reports[i] = d.Report(opts.Quote)
	}
	return reports, emit(opts, reports...)
}

func emit(opts Options, reports ...*Report) error {
	if !opts.Noconsole {
		if opts.Format == "json" {
			text, err := renderAll(opts.Format, reports)
			if err != nil {
				return err
			}
			fmt.Fprint(opts.stdout(), text)
		} else {
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(opts.stdout())
				}
				PrintReport(opts.stdout(), r)
			}
		}
	}

	if opts.Output == "" {
		return nil
	}
	text, err := renderAll(opts.Format, reports)
	if err != nil {
		return err
	}
	if err := WriteReport(opts.Output, text); err != nil {
		PrintWarning(opts.stderr(), "error saving results: %v", err)
		return err
	}
	if !opts.Noconsole {
		fmt.Fprintf(opts.stderr(), "results saved in '%s'\n", opts.Output)
	}
	return nil
}

// renderAll renders a single report as is, and several as a JSON array or
// as texts separated by a blank line.
func renderAll(format string, reports []*Report) (string, error) {
	if len(reports) == 1 {
		return reports[0].Render(format)
	}
	if format == "json" {
		return utils.CustomMarshal(reports)
	}
	texts := make([]string, len(reports))
	for i, r := range reports {
		text, err := r.Render(format)
		if err != nil {
			return "", err
		}
		texts[i] = text
	}
	return strings.Join(texts, "\n\n\n"), nil
}
