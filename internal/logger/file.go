package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/prebate/internal/models"
)

// FileLogger logs session events to files in the .prebate/logs/ directory.
// It creates one timestamped log file per session and maintains a
// latest.log symlink pointing to the most recent one.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir      string
	sessionLog  *os.File
	sessionFile string
	logLevel    string
	mu          sync.Mutex
}

// NewFileLogger creates a new FileLogger that writes to .prebate/logs/.
// Uses default log level "info".
func NewFileLogger() (*FileLogger, error) {
	logDir := filepath.Join(".prebate", "logs")
	return NewFileLoggerWithDirAndLevel(logDir, "info")
}

// NewFileLoggerWithDirAndLevel creates a new FileLogger with a custom log directory and log level.
// It creates the log directory if it doesn't exist, opens a timestamped
// session log file, and creates/updates the latest.log symlink.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Generate timestamped filename: session-YYYYMMDD-HHMMSS.log
	ts := time.Now().Format("20060102-150405")
	sessionFile := filepath.Join(logDir, fmt.Sprintf("session-%s.log", ts))

	file, err := os.OpenFile(sessionFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create session log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(sessionFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:      logDir,
		sessionLog:  file,
		sessionFile: sessionFile,
		logLevel:    normalizeLogLevel(logLevel),
		mu:          sync.Mutex{},
	}

	logger.writeSessionLog("=== PreBate Session Log ===\n")
	logger.writeSessionLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// Path returns the session log file path.
func (fl *FileLogger) Path() string {
	return fl.sessionFile
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeSessionLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSessionStart logs the session id in full along with the visible count.
func (fl *FileLogger) LogSessionStart(sessionID string, visible int) {
	if !fl.shouldLog("info") {
		return
	}

	questionLabel := "question"
	if visible != 1 {
		questionLabel = "questions"
	}
	fl.writeSessionLog(fmt.Sprintf("[%s] Session %s started: %d %s visible\n", timestamp(), sessionID, visible, questionLabel))
}

// LogAnswer logs an accepted answer at DEBUG level.
func (fl *FileLogger) LogAnswer(id models.QuestionID, answer models.Answer, progress models.Progress) {
	if !fl.shouldLog("debug") {
		return
	}
	fl.writeSessionLog(fmt.Sprintf("[%s] Answered %s: %s (%s, %d%%)\n", timestamp(), id, answer, progress, progress.Percent()))
}

// LogBack logs backward navigation at DEBUG level.
func (fl *FileLogger) LogBack(id models.QuestionID) {
	if !fl.shouldLog("debug") {
		return
	}
	fl.writeSessionLog(fmt.Sprintf("[%s] Back to %s\n", timestamp(), id))
}

// LogReset logs a session reset at INFO level.
func (fl *FileLogger) LogReset() {
	if !fl.shouldLog("info") {
		return
	}
	fl.writeSessionLog(fmt.Sprintf("[%s] Session reset: all answers cleared\n", timestamp()))
}

// LogSessionComplete logs scores, every fired rule and every action.
func (fl *FileLogger) LogSessionComplete(result models.Result) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] === Assessment Summary ===\n", ts)
	fmt.Fprintf(&b, "[%s] Probate risk: %s (score %d)\n", ts, result.ProbateLabel, result.ProbateRisk)
	fmt.Fprintf(&b, "[%s] Dispute risk: %s (score %d)\n", ts, result.DisputeLabel, result.DisputeRisk)

	if len(result.Findings) > 0 {
		fmt.Fprintf(&b, "[%s] Rules fired:\n", ts)
		for _, f := range result.Findings {
			fmt.Fprintf(&b, "[%s]   - %s (probate +%d, dispute +%d)\n", ts, f.Rule, f.Probate, f.Dispute)
		}
	}

	if result.HasActions() {
		fmt.Fprintf(&b, "[%s] Recommended actions:\n", ts)
		for i, action := range result.Actions {
			fmt.Fprintf(&b, "[%s]   %d. %s\n", ts, i+1, action)
		}
	} else {
		fmt.Fprintf(&b, "[%s] No immediate actions detected.\n", ts)
	}

	fl.writeSessionLog(b.String())
}

// Close flushes and closes the session log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.sessionLog != nil {
		if err := fl.sessionLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync session log: %w", err)
		}
		if err := fl.sessionLog.Close(); err != nil {
			return fmt.Errorf("failed to close session log: %w", err)
		}
		fl.sessionLog = nil
	}

	return nil
}

// writeSessionLog is a thread-safe helper to write to the session log file.
func (fl *FileLogger) writeSessionLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.sessionLog != nil {
		fl.sessionLog.WriteString(message)
		// Flush after each write for real-time logging
		fl.sessionLog.Sync()
	}
}
