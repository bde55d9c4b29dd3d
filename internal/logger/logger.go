package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

// Logger writes colored category-tagged lines to the terminal and JSON lines
// to a daily log file.
type Logger struct {
	file     *os.File
	jsonLog  *log.Logger
	minLevel Level
}

func New() *Logger {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		log.Fatal("failed to create logs directory:", err)
	}
	name := fmt.Sprintf("logs/concert-service-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Fatal("failed to open log file:", err)
	}
	l := &Logger{
		file:     f,
		jsonLog:  log.New(f, "", 0),
		minLevel: INFO,
	}
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		l.minLevel = DEBUG
	}
	return l
}

// Discard returns a logger that drops everything. Tests use it to keep
// output clean and avoid touching the filesystem.
func Discard() *Logger {
	return &Logger{minLevel: FATAL + 1}
}

func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

func (l *Logger) Debug(category, msg string) { l.write(DEBUG, category, msg) }
func (l *Logger) Info(category, msg string)  { l.write(INFO, category, msg) }
func (l *Logger) Warn(category, msg string)  { l.write(WARN, category, msg) }
func (l *Logger) Error(category, msg string) { l.write(ERROR, category, msg) }

func (l *Logger) Fatal(category, msg string) {
	l.write(FATAL, category, msg)
	l.Close()
	os.Exit(1)
}

func (l *Logger) write(level Level, category, msg string) {
	if level < l.minLevel {
		return
	}
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     levelName(level),
		Category:  strings.ToUpper(category),
		Message:   msg,
	}
	fmt.Printf("%s %s %s %s\n",
		color.WhiteString(e.Timestamp),
		levelColor(level)("%-5s", e.Level),
		color.CyanString("[%s]", e.Category),
		e.Message,
	)
	if l.jsonLog != nil {
		if b, err := json.Marshal(e); err == nil {
			l.jsonLog.Println(string(b))
		}
	}
}

func levelName(level Level) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "FATAL"
	}
}

func levelColor(level Level) func(format string, a ...interface{}) string {
	switch level {
	case DEBUG:
		return color.MagentaString
	case INFO:
		return color.GreenString
	case WARN:
		return color.YellowString
	default:
		return color.RedString
	}
}
