package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetLoggingLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// Configure routes the global logger to out in human-readable form.
func Configure(out io.Writer, level zerolog.Level) {
	SetLoggingLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}
