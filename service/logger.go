package service

import "log"

type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func NewNoopLogger() Logger {
	return noopLogger{}
}

type stdLogger struct {
	debug bool
}

func (l stdLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		log.Printf("[APPROVAL DEBUG] "+msg, args...)
	}
}

func (stdLogger) Info(msg string, args ...interface{}) {
	log.Printf("[APPROVAL INFO] "+msg, args...)
}

func (stdLogger) Error(msg string, args ...interface{}) {
	log.Printf("[APPROVAL ERROR] "+msg, args...)
}

func NewStdLogger(debug bool) Logger {
	return stdLogger{debug: debug}
}
