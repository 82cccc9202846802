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

// UseConsoleWriter - Switches the global logger to human readable output on w
func UseConsoleWriter(w io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
}
