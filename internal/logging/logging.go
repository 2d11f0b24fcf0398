// internal/logging/logging.go
//
// Global zerolog setup shared by every command.
//   - level:  zerolog level name (trace..disabled); unknown names keep info.
//   - format: "console" (human-readable) or "json".
//   - file:   when set, logs are also written to a rotating file (lumberjack).

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level, format and sinks.
type Options struct {
	Level     string
	Format    string
	File      string
	MaxSizeMB int
}

// Setup configures the global logger and returns a closer for the file sink
// (a no-op when no file is configured).
func Setup(opts Options) io.Closer {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err == nil && opts.Level != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	var console io.Writer = os.Stderr
	if strings.ToLower(opts.Format) != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	var closer io.Closer = nopCloser{}
	out := console
	if strings.TrimSpace(opts.File) != "" {
		size := opts.MaxSizeMB
		if size <= 0 {
			size = 10
		}
		lj := &lumberjack.Logger{Filename: opts.File, MaxSize: size, MaxBackups: 3, MaxAge: 28, Compress: true}
		out = zerolog.MultiLevelWriter(console, lj)
		closer = lj
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
