package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a configured level name to a Level. An empty name means
// LevelInfo.
func ParseLevel(name string) (Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LevelInfo, nil
	}
	for level, label := range levelNames {
		if strings.EqualFold(name, label) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// dailyFile is the rotating destination shared by a logger and its children.
type dailyFile struct {
	dir     string
	timeNow func() time.Time

	mu          sync.Mutex
	currentDate string
	file        *os.File
}

func (d *dailyFile) write(level Level, component, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.timeNow()
	if err := d.rotate(now.Format("2006-01-02")); err != nil {
		return
	}
	if component != "" {
		message = component + ": " + message
	}
	fmt.Fprintf(d.file, "%s [%s] %s\n", now.Format(time.RFC3339), level, message)
}

func (d *dailyFile) rotate(date string) error {
	if d.file != nil && d.currentDate == date {
		return nil
	}
	if d.file != nil {
		_ = d.file.Close()
		d.file = nil
	}

	path := filepath.Join(d.dir, fmt.Sprintf("humble-line-%s.log", date))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	d.file = file
	d.currentDate = date
	return nil
}

func (d *dailyFile) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.currentDate = ""
	return err
}

// Logger writes leveled lines to one file per day. A nil *Logger discards
// everything, so components can be built without one.
type Logger struct {
	out       *dailyFile
	level     Level
	component string
}

// NewLogger creates a logger writing under dir, typically ~/.humble-line/logs.
// Unknown level names fall back to info.
func NewLogger(dir string, level string) (*Logger, error) {
	ll, err := ParseLevel(level)
	if err != nil {
		ll = LevelInfo
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &Logger{
		out:   &dailyFile{dir: dir, timeNow: time.Now},
		level: ll,
	}, nil
}

// Named returns a logger that prefixes its lines with component and shares
// the parent's file and level.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{out: l.out, level: l.level, component: component}
}

// SetTimeNow replaces the clock for this logger and every logger sharing its
// file; tests use it to cross a day boundary.
func (l *Logger) SetTimeNow(fn func() time.Time) {
	l.out.mu.Lock()
	l.out.timeNow = fn
	l.out.mu.Unlock()
}

// LevelEnabled reports whether the provided level should be emitted.
func (l *Logger) LevelEnabled(level Level) bool {
	if l == nil {
		return false
	}
	return level >= l.level
}

// Close releases the current log file. Children share it, so closing any of
// them closes all; a later write reopens it.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.out.close()
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	l.out.write(level, l.component, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
