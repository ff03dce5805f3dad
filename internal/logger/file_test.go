package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/prebate/internal/models"
)

func readLog(t *testing.T, fl *FileLogger) string {
	t.Helper()
	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	return string(data)
}

// TestLogDirectoryCreation verifies .prebate/logs/ is created relative to the working directory
func TestLogDirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(oldWd)

	logger, err := NewFileLogger()
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(filepath.Join(tmpDir, ".prebate", "logs"))
	assert.NoError(t, err)
}

func TestSessionLogFileAndSymlink(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	require.NoError(t, err)
	defer logger.Close()

	name := filepath.Base(logger.Path())
	assert.True(t, strings.HasPrefix(name, "session-"), "unexpected log name %s", name)
	assert.True(t, strings.HasSuffix(name, ".log"))

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, name, target)

	content := readLog(t, logger)
	assert.Contains(t, content, "=== PreBate Session Log ===")
	assert.Contains(t, content, "Started at: ")
}

func TestSymlinkReplaced(t *testing.T) {
	logDir := t.TempDir()
	stale := filepath.Join(logDir, "session-old.log")
	require.NoError(t, os.WriteFile(stale, nil, 0644))
	require.NoError(t, os.Symlink("session-old.log", filepath.Join(logDir, "latest.log")))

	logger, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	require.NoError(t, err)
	defer logger.Close()

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(logger.Path()), target)
}

func TestFileLoggerSessionEvents(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "debug")
	require.NoError(t, err)
	defer logger.Close()

	logger.LogSessionStart("0123456789abcdef", 1)
	logger.LogAnswer(models.HasWill, models.No, models.Progress{Answered: 1, Visible: 4})
	logger.LogBack(models.HasWill)
	logger.LogReset()
	logger.LogWarn("invalid input")
	logger.LogSessionComplete(models.Result{
		ProbateRisk:  2,
		ProbateLabel: models.LabelLow,
		DisputeLabel: models.LabelLow,
		Actions:      []string{"Create a valid will."},
		Findings:     []models.Finding{{Rule: "no_will", Probate: 2}},
	})

	content := readLog(t, logger)
	for _, want := range []string{
		"Session 0123456789abcdef started: 1 question visible",
		"Answered has_will: No (1 of 4 answered, 25%)",
		"Back to has_will",
		"Session reset: all answers cleared",
		"[WARN] invalid input",
		"Probate risk: Low (score 2)",
		"- no_will (probate +2, dispute +0)",
		"1. Create a valid will.",
	} {
		assert.Contains(t, content, want)
	}
}

func TestFileLoggerNoActions(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	require.NoError(t, err)
	defer logger.Close()

	logger.LogSessionComplete(models.Result{ProbateLabel: models.LabelLow, DisputeLabel: models.LabelLow})

	content := readLog(t, logger)
	assert.Contains(t, content, "No immediate actions detected.")
	assert.NotContains(t, content, "Rules fired")
}

func TestFileLoggerLevelFiltering(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "warn")
	require.NoError(t, err)
	defer logger.Close()

	logger.LogInfo("hidden info")
	logger.LogAnswer(models.HasWill, models.Yes, models.Progress{})
	logger.LogError("shown error")

	content := readLog(t, logger)
	assert.NotContains(t, content, "hidden info")
	assert.NotContains(t, content, "Answered")
	assert.Contains(t, content, "[ERROR] shown error")
}

func TestFileLoggerClose(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close(), "second close is a no-op")

	// Writes after close are dropped
	logger.LogInfo("after close")
	assert.NotContains(t, readLog(t, logger), "after close")
}
