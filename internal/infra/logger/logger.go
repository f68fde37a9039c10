package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewTextHandler(os.Stderr, nil))
	logFile *os.File
	logPath string
)

// Setup installs the global logger: human-readable text on stderr, plus a
// JSON debug log under <root>/.rosbuild/logs when debug is enabled. The
// returned cleanup closes the debug file; it is non-nil even on error.
func Setup(cfg Config) (func() error, error) {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	handlers := []slog.Handler{console}

	var f *os.File
	var path string
	var setupErr error
	if cfg.Debug {
		root := filepath.Clean(cfg.Root)
		if root == "" {
			root = "."
		}
		dir := filepath.Join(root, ".rosbuild", "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			setupErr = err
		} else {
			path = filepath.Join(dir, "rosbuild.log")
			f, setupErr = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if setupErr != nil {
				f = nil
				path = ""
			}
		}
		if f != nil {
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: addSource,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
						t := a.Value.Time().UTC()
						a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
					}
					return a
				},
			}))
		}
	}

	l := slog.New(fanout(handlers))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	if f != nil {
		global.Debug("logger.initialized", "path", path)
	}

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = slog.New(slog.NewTextHandler(os.Stderr, nil))
		return cerr
	}

	return cleanup, setupErr
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func fanout(hs []slog.Handler) slog.Handler {
	if len(hs) == 1 {
		return hs[0]
	}
	return multiHandler(hs)
}

// multiHandler duplicates records to every wrapped handler.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}
