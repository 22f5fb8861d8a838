// Package logger provides the minimal leveled logger used by the huffman
// command.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes to w with the standard log flags.
func New(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return New(io.Discard) }

func (l *stdLogger) Infof(format string, v ...interface{})  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...interface{}) { l.l.Printf("[ERROR] "+format, v...) }
