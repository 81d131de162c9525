// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// newLogger builds the CLI logger writing to w.
// format is "console" (human readable, no color) or "json"; level is any zerolog level name.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	switch format {
	case logFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	case logFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid --log-format %q (want %s or %s)", format, logFormatConsole, logFormatJSON)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
