package wordml

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log lines by severity. LogOff silences the logger.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

var levelNames = []string{"DEBUG", "INFO", "WARN", "ERROR", "OFF"}

func (l LogLevel) String() string {
	if l < LogDebug || l > LogOff {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func normalizeLogLevel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseLogLevel maps a config value such as "debug" or " WARN " to a level.
// Unknown values mean info.
func ParseLogLevel(s string) LogLevel {
	s = normalizeLogLevel(s)
	for l, name := range levelNames {
		if strings.ToLower(name) == s {
			return LogLevel(l)
		}
	}
	return LogInfo
}

// Fields are key/value pairs appended to a log line in key order.
type Fields map[string]interface{}

// sink is shared by a logger and every child derived from it, so a level
// change made through any of them applies to all.
type sink struct {
	mu    sync.Mutex
	w     io.Writer
	level LogLevel
}

// Logger writes one line per event: timestamp, level, message, fields.
type Logger struct {
	sink   *sink
	fields Fields
}

func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{sink: &sink{w: w, level: level}}
}

func (l *Logger) Level() LogLevel {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// WithField returns a child logger that adds key=value to every line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

func (l *Logger) WithFields(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{sink: l.sink, fields: merged}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if level < l.sink.level {
		return
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%s [%s] ", time.Now().Format("2006-01-02 15:04:05"), level)
	fmt.Fprintf(&line, format, args...)

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&line, " %s=%v", k, l.fields[k])
	}
	line.WriteByte('\n')
	io.WriteString(l.sink.w, line.String())
}

// std receives the package's own events: style lookup failures, ignored
// w:jc values and part loading. It starts at the configured level.
var (
	stdMu sync.RWMutex
	std   = NewLogger(os.Stderr, ParseLogLevel(GetGlobalConfig().LogLevel))
)

func SetLogger(logger *Logger) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = logger
}

func GetLogger() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

func WithFields(fields Fields) *Logger {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig re-levels the package logger from the global config.
func UpdateLoggerFromConfig() {
	GetLogger().SetLevel(ParseLogLevel(GetGlobalConfig().LogLevel))
}
