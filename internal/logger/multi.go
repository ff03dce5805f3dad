package logger

import "github.com/harrison/prebate/internal/models"

// MultiLogger fans every call out to each wrapped logger in order.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

func (m *MultiLogger) LogSessionStart(sessionID string, visible int) {
	for _, l := range m.loggers {
		l.LogSessionStart(sessionID, visible)
	}
}

func (m *MultiLogger) LogAnswer(id models.QuestionID, answer models.Answer, progress models.Progress) {
	for _, l := range m.loggers {
		l.LogAnswer(id, answer, progress)
	}
}

func (m *MultiLogger) LogBack(id models.QuestionID) {
	for _, l := range m.loggers {
		l.LogBack(id)
	}
}

func (m *MultiLogger) LogReset() {
	for _, l := range m.loggers {
		l.LogReset()
	}
}

func (m *MultiLogger) LogSessionComplete(result models.Result) {
	for _, l := range m.loggers {
		l.LogSessionComplete(result)
	}
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*FileLogger)(nil)
	_ Logger = (*MultiLogger)(nil)
	_ Logger = (*NoOpLogger)(nil)
)
