package sink

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Sink is the diagnostic output used by pipe.Log and by the failure path of
// pipe.RunAndForget. It only promises "write a value/message for a human".
type Sink struct {
	logger zerolog.Logger
}

// New creates a sink from configuration, writing to stdout or stderr.
func New(cfg Config) *Sink {
	cfg.ApplyDefaults()
	return NewWithWriter(cfg, outputWriter(cfg.Output))
}

// NewWithWriter creates a sink writing to an explicit writer. Used by tests
// and by callers that redirect diagnostics.
func NewWithWriter(cfg Config, w io.Writer) *Sink {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}
	}

	zl := zerolog.New(w).Level(level)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return &Sink{logger: zl}
}

// FromEnv creates a sink configured from DEFLOW_LOG_* environment variables.
func FromEnv() (*Sink, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return New(cfg), nil
}

var (
	defaultSink *Sink
	defaultOnce sync.Once
)

// Default returns the process-wide sink, built lazily from defaults.
func Default() *Sink {
	defaultOnce.Do(func() {
		defaultSink = New(Config{})
	})
	return defaultSink
}

// Value writes the current chain value, with an optional label.
func (s *Sink) Value(label string, v any) {
	ev := s.logger.Info().Interface("value", v)
	if label == "" {
		ev.Msg("pipeline value")
		return
	}
	ev.Msg(label)
}

// Failure writes a swallowed chain failure.
func (s *Sink) Failure(err error) {
	s.logger.Error().Err(err).Msg("pipeline failed")
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
