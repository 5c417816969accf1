package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sheetshop/storefront/internal/core"
)

const defaultService = "storefront"

var DefaultLoggerOpts = &LoggerOpts{
	Environment: core.Development,
}

type LoggerOpts struct {
	Environment core.Environment
	// Level overrides the environment's default level ("debug", "warn", ...).
	Level string
	// Service tags production JSON lines. Defaults to "storefront".
	Service string
	// Output defaults to stderr.
	Output io.Writer
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

// levelFor picks the level: an explicit, parseable Level wins; otherwise
// production logs info, testing logs warn and everything else logs debug.
func levelFor(opts *LoggerOpts) zerolog.Level {
	if opts.Level != "" {
		if lvl, err := zerolog.ParseLevel(opts.Level); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	switch opts.Environment {
	case core.Production:
		return zerolog.InfoLevel
	case core.Testing:
		return zerolog.WarnLevel
	default:
		return zerolog.DebugLevel
	}
}

func Init(opts ...LoggerOpts) {
	o := safe(opts...)
	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	service := o.Service
	if service == "" {
		service = defaultService
	}

	var l zerolog.Logger
	if o.Environment.IsProduction() {
		l = zerolog.New(out).With().Timestamp().Str("service", service).Logger()
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Caller().Logger()
	}
	log.Logger = l.Level(levelFor(o))
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Panic() *zerolog.Event {
	return log.Panic()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
