package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevsim/src/types"
)

// InitLogger installs a text handler with compact timestamps and file:line sources as the default
// logger. If logFile is set, output is written to stdout and to that file. The returned close
// function flushes the log file.
func InitLogger(level slog.Level, logFile string) (func() error, error) {
	var w io.Writer = os.Stdout
	closeFn := func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
		closeFn = file.Close
	}
	slog.SetDefault(slog.New(NewHandler(w, level)))
	return closeFn, nil
}

func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05.000"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
}

// ParseLevel maps debug, info, warn and error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// LogEvent is the default elevator event collector.
func LogEvent(ev types.Event) {
	attrs := []any{"elevator", ev.ElevatorID, "floor", ev.Floor, "at", ev.Time.Format("15:04:05.000")}
	if ev.Kind == types.EventPickUp || ev.Kind == types.EventDropOff {
		attrs = append(attrs, "request", ev.Request.String())
	}
	slog.Info(ev.Message(), attrs...)
}
