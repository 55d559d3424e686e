package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = zap.NewNop()

// Format selects the encoding of both the log file and rendered reports:
// "json" or "text".
var Format = "text"

// InitLogger points Logger at logfile. With nolog set every entry is
// dropped.
func InitLogger(logfile string, nolog bool) error {
	if nolog {
		Logger = zap.NewNop()
		return nil
	}

	writeSyncer, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: create log file %s: %v", ErrIOFailure, logfile, err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	}

	var encoder zapcore.Encoder
	if Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writeSyncer), zapcore.DebugLevel)
	Logger = zap.New(core)
	return nil
}
