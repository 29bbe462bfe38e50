// Package logger builds the web service's zerolog logger.
package logger

import (
	"io"
	"os"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

var installMarshalers sync.Once

// New returns a JSON logger on stdout tagged with serviceName.
// Error events logged with .Stack() always carry a stack trace.
func New(serviceName string, level zerolog.Level) zerolog.Logger {
	return NewWithWriter(os.Stdout, serviceName, level)
}

// NewConsole is New with human-readable output, for development.
func NewConsole(serviceName string, level zerolog.Level) zerolog.Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, serviceName, level)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, serviceName string, level zerolog.Level) zerolog.Logger {
	installMarshalers.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})

	return zerolog.New(w).
		Level(level).
		With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
