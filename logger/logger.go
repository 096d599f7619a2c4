package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until InitLogger runs
var Logger = zap.NewNop()

// InitLogger builds the global JSON logger at the given level.
// An empty logFile logs to stdout.
func InitLogger(logFile string, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	sink, err := openSink(logFile)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, lvl)
	Logger = zap.New(core, zap.AddCaller())
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// openSink appends to path, creating the file and its parent directories
func openSink(path string) (zapcore.WriteSyncer, error) {
	if path == "" {
		return zapcore.Lock(os.Stdout), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(file), nil
}
