package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// ParseLevel maps a config string to a LogLevel, defaulting to INFO.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type Logger struct {
	console  io.Writer
	file     *os.File
	loggers  map[LogLevel]*log.Logger // colored, console
	plain    map[LogLevel]*log.Logger // uncolored, file
	minLevel LogLevel
}

var (
	defaultLogger *Logger
	once          sync.Once
	mu            sync.Mutex
)

var levelTags = map[LogLevel]string{
	DEBUG: colorGray + "[DEBUG] " + colorReset,
	INFO:  colorReset + "[INFO]  " + colorReset,
	WARN:  colorYellow + "[WARN]  " + colorReset,
	ERROR: colorRed + "[ERROR] " + colorReset,
}

var plainTags = map[LogLevel]string{
	DEBUG: "[DEBUG] ",
	INFO:  "[INFO]  ",
	WARN:  "[WARN]  ",
	ERROR: "[ERROR] ",
}

func ensureInitialized() {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = &Logger{console: os.Stdout, minLevel: INFO}
			defaultLogger.setup()
		}
	})
}

// Init configures the default logger. An empty filename logs to console
// only; console=false with a filename logs to the file only.
func Init(filename string, console bool, level LogLevel) error {
	mu.Lock()
	defer mu.Unlock()

	if defaultLogger != nil && defaultLogger.file != nil {
		defaultLogger.file.Close()
	}

	l := &Logger{minLevel: level}
	if filename != "" {
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
	}
	if console {
		l.console = os.Stdout
	}
	if l.console == nil && l.file == nil {
		return fmt.Errorf("no output destination specified")
	}
	l.setup()
	defaultLogger = l
	return nil
}

// Close closes the log file if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger != nil && defaultLogger.file != nil {
		defaultLogger.file.Close()
		defaultLogger.file = nil
	}
}

func (l *Logger) setup() {
	flags := log.Ldate | log.Ltime
	if l.console != nil {
		l.loggers = make(map[LogLevel]*log.Logger, len(levelTags))
		for lvl, tag := range levelTags {
			l.loggers[lvl] = log.New(l.console, tag, flags)
		}
	}
	if l.file != nil {
		l.plain = make(map[LogLevel]*log.Logger, len(plainTags))
		for lvl, tag := range plainTags {
			l.plain[lvl] = log.New(l.file, tag, flags)
		}
	}
}

func (l *Logger) output(level LogLevel, msg string) {
	if level < l.minLevel {
		return
	}
	if lg, ok := l.loggers[level]; ok {
		lg.Output(3, msg)
	}
	if lg, ok := l.plain[level]; ok {
		lg.Output(3, msg)
	}
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...interface{}) {
	ensureInitialized()
	defaultLogger.output(DEBUG, fmt.Sprintf(format, v...))
}

// Infof logs a formatted info message.
func Infof(format string, v ...interface{}) {
	ensureInitialized()
	defaultLogger.output(INFO, fmt.Sprintf(format, v...))
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	ensureInitialized()
	defaultLogger.output(WARN, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	ensureInitialized()
	defaultLogger.output(ERROR, fmt.Sprintf(format, v...))
}

// Fatalf logs a formatted error message and exits the program.
func Fatalf(format string, v ...interface{}) {
	ensureInitialized()
	defaultLogger.output(ERROR, fmt.Sprintf(format, v...))
	os.Exit(1)
}
