// Package logging builds the zap logger used by the qroute command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, encoding and an optional rotated file sink.
type Config struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`
}

// Default logs info and above to stderr in console format.
func Default() Config {
	return Config{Level: "info", Format: "console", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28}
}

// New builds a logger writing to stderr and, when File is set, to a
// lumberjack-rotated file. The file sink always uses JSON.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(os.Stderr), level),
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder("json"), fileWriter(cfg), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func fileWriter(cfg Config) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	})
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return l, nil
}
