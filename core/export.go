package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	DefaultDecomposeFile = "resultados_subcadenas.txt"
	DefaultClosureFile   = "resultados_cerraduras.txt"
)

// WriteReport writes text to path as UTF-8, replacing any previous content.
func WriteReport(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Logger.Error("write report failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: write %s: %v", ErrIOFailure, path, err)
	}
	Logger.Info("report written", zap.String("path", path))
	return nil
}
