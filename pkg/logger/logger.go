// Package logger предоставляет printf-логгер поверх log/slog с записью в файл или stdout.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

// Logger логгер сервиса
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// Options дополнительные параметры логгера
type Options struct {
	Format  string
	Service string
}

// New создает логгер, пишущий в файл path (пустой путь - stdout)
func New(path, level string) (*Logger, error) {
	return NewWithOptions(path, level, Options{})
}

// NewWithOptions создает логгер с указанием формата и имени сервиса
func NewWithOptions(path, level string, opts Options) (*Logger, error) {
	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	l := NewWriter(out, level, opts)
	l.file = file
	return l, nil
}

// NewWriter создает логгер поверх произвольного io.Writer (используется в тестах)
func NewWriter(out io.Writer, level string, opts Options) *Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	if opts.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", opts.Service)})
	}

	return &Logger{slog: slog.New(handler)}
}

// Nop возвращает логгер, отбрасывающий все сообщения
func Nop() *Logger {
	return NewWriter(io.Discard, LevelError, Options{})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	if !l.slog.Enabled(context.Background(), level) {
		return
	}
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

// Error пишет ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

// Fatal пишет ошибку и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Sync()
		_ = l.file.Close()
		l.file = nil
	}
}
