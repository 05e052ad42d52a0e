// SPDX-License-Identifier: MIT

// Package logger builds the process logger: zap underneath, logr on top.
// Library packages only see logr.Logger; zap stays a CLI concern.
package logger

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MaxVerbosity is the highest logr V-level enabled in debug mode.
const MaxVerbosity = 2

// Config selects the encoder and level.
type Config struct {
	// Debug switches to the console encoder and enables V(1)..V(MaxVerbosity).
	Debug bool
	// Output defaults to os.Stderr so stdout stays reserved for results.
	Output io.Writer
}

// New returns a logr.Logger backed by zap.
//
//	Debug=false: JSON encoder, info level.
//	Debug=true:  console encoder, levels down to V(MaxVerbosity).
func New(cfg Config) logr.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var (
		enc   zapcore.Encoder
		level = zapcore.InfoLevel
	)
	if cfg.Debug {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		// zapr maps V(n) to zap level -n.
		level = zapcore.Level(-MaxVerbosity)
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(level))

	return zapr.NewLogger(zap.New(core))
}
