// Package logging configures logrus from the application's config.
package logging

import (
	"fmt"
	"io"

	"github.com/mayjs/mayjs3d/internal/config"
	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logger to write to out at the configured level and in the configured format,
// and returns the entry every part of the application logs through.
func Setup(cfg config.Log, out io.Writer) (*log.Entry, error) {

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", config.ErrInvalid, err)
	}

	var formatter log.Formatter

	switch cfg.Format {
	case "text", "":
		formatter = &log.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &log.JSONFormatter{}
	default:
		return nil, fmt.Errorf("%w: log.format: unknown format %q", config.ErrInvalid, cfg.Format)
	}

	logger := log.StandardLogger()
	logger.SetLevel(level)
	logger.SetFormatter(formatter)
	logger.SetOutput(out)

	return logger.WithField("app", "mayjs"), nil

}
