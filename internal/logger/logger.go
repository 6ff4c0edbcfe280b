package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/atiedebee/huff/internal/config"
	"github.com/rs/zerolog"
)

// New builds the logger described by the logger.* keys of conf, writing to
// out.
func New(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = conf.String("logger.time-format", time.RFC3339)

	if conf.Bool("logger.prettier", true) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	l, err := zerolog.ParseLevel(conf.String("logger.level", "info"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	return zerolog.New(out).Level(l).With().Timestamp().Logger(), nil
}
