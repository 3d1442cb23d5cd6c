package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/gizmos.txt"

// sink is the line store shared by a Logger and the handlers derived from it.
type sink struct {
	mu    sync.Mutex
	lines []string
	path  string
}

// Logger stores formatted lines in memory and appends them to a file on disk.
// It implements slog.Handler so it can back a *slog.Logger.
type Logger struct {
	sink   *sink
	level  slog.Leveler
	attrs  string // preformatted " key=value" pairs from WithAttrs
	groups []string
}

// New returns a Logger writing to LogFilePath at level and ensures the logs directory exists.
func New(level slog.Leveler) *Logger {
	return NewAt(LogFilePath, level)
}

// NewAt returns a Logger writing to path (empty = memory only) and dropping records below level.
func NewAt(path string, level slog.Leveler) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	return &Logger{sink: &sink{path: path}, level: level}
}

// Log appends a line prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	l.sink.write("[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line)
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	out := make([]string, len(l.sink.lines))
	copy(out, l.sink.lines)
	return out
}

func (s *sink) write(stamped string) {
	s.mu.Lock()
	s.lines = append(s.lines, stamped)
	s.mu.Unlock()

	if s.path == "" {
		return
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

func (l *Logger) Enabled(_ context.Context, level slog.Level) bool {
	return level >= l.level.Level()
}

// Handle formats r as "LEVEL msg key=value ..." and logs it.
func (l *Logger) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(l.attrs)
	prefix := strings.Join(l.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	l.sink.write("[" + ts.Format("2006-01-02 15:04:05") + "] " + b.String())
	return nil
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func (l *Logger) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	prefix := strings.Join(l.groups, ".")
	for _, a := range attrs {
		writeAttr(&b, prefix, a)
	}
	c := *l
	c.attrs += b.String()
	return &c
}

func (l *Logger) WithGroup(name string) slog.Handler {
	if name == "" {
		return l
	}
	c := *l
	c.groups = append(append([]string(nil), l.groups...), name)
	return &c
}
