// Package logging builds the *log.Logger shared by every component.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/config"
)

const flags = log.LstdFlags | log.Lmicroseconds

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to a rotating file when cfg.LogFile is set,
// otherwise to stderr. Close the returned io.Closer on shutdown.
func New(cfg config.Config) (*log.Logger, io.Closer) {
	if cfg.LogFile == "" {
		return log.New(os.Stderr, "", flags), nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
	}
	return log.New(rotator, "", flags), rotator
}
