package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare builds the zap.Logger described by conf: a colorized console
// core gated on EnableColorOutput, optionally tee'd with a file core.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stdout) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	consoleEncoder := zapcore.NewConsoleEncoder(ec)

	var consoleCore zapcore.Core
	switch conf.Console.Level {
	case "debug":
		consoleCore = zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)
	case "normal":
		consoleCore = zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.InfoLevel)
	default:
		consoleCore = zapcore.NewNopCore()
	}

	var fileCore zapcore.Core
	switch conf.File.Level {
	case "debug", "normal":
		flags := os.O_CREATE | os.O_WRONLY
		if conf.File.Mode == "append" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(conf.File.Destination, flags, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to open log destination '%s': %w", conf.File.Destination, err)
		}
		level := zap.InfoLevel
		if conf.File.Level == "debug" {
			level = zap.DebugLevel
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level)
	default:
		fileCore = zapcore.NewNopCore()
	}

	return zap.New(zapcore.NewTee(consoleCore, fileCore)).Named("css-minify"), nil
}
