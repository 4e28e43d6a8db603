package logging

import (
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"

	"github.com/oxygene76/spheretrace/pkg/utils"
)

// New builds a logger writing to dst using the level and format from cfg.
// An unparseable level falls back to info.
func New(dst io.Writer, cfg utils.LogConfig) log.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.JSON {
		opts = append(opts, log.OutputJSONOption())
	} else {
		opts = append(opts, log.ColorOption(false))
	}

	return log.NewLogger(dst, opts...).With("module", "spheretrace")
}

// Nop returns a logger that discards everything
func Nop() log.Logger {
	return log.NewNopLogger()
}
