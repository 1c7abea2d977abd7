package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	logger := &AppLogger{logger: newLogrus(&bytes.Buffer{})}

	logger.SetLevel(LevelDebug)
	assert.Equal(t, logrus.DebugLevel, logger.logger.GetLevel())

	logger.SetLevel(LevelError)
	assert.Equal(t, logrus.ErrorLevel, logger.logger.GetLevel())
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := &AppLogger{logger: newLogrus(&buf)}
	logger.SetLevel(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	assert.Zero(t, buf.Len(), "debug/info should be filtered at warn level")

	logger.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")

	buf.Reset()
	logger.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := &AppLogger{logger: newLogrus(&buf)}

	logger.Info("Applying %dK at %s", 5000, "0.8")

	output := buf.String()
	assert.Contains(t, output, time.Now().Format("2006/01/02"))
	assert.Contains(t, output, "level=info")
	assert.Contains(t, output, "Applying 5000K at 0.8")
}

func TestAppLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := &AppLogger{logger: newLogrus(&buf)}

	logger.WithFields(logrus.Fields{"temp-day": "6500"}).Info("loaded")
	assert.Contains(t, buf.String(), "temp-day=6500")
}

func TestEnableFileLogging(t *testing.T) {
	dir := t.TempDir()
	logger := &AppLogger{
		logger:      newLogrus(&bytes.Buffer{}),
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
	require.NoError(t, logger.EnableFileLogging(dir))
	defer logger.Close()

	logger.Info("to file")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestEnableFileLogging_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	link := filepath.Join(dir, "logs")
	require.NoError(t, os.Mkdir(target, 0700))
	require.NoError(t, os.Symlink(target, link))

	logger := &AppLogger{logger: newLogrus(&bytes.Buffer{})}
	assert.Error(t, logger.EnableFileLogging(link))
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")
	require.NoError(t, os.WriteFile(logFile, []byte(strings.Repeat("x", 64*1024)), 0600))

	logger := &AppLogger{
		logger:      newLogrus(&bytes.Buffer{}),
		maxFileSize: 32 * 1024,
		maxBackups:  2,
	}
	logger.rotateIfNeeded(logFile)

	_, err := os.Stat(logFile)
	assert.True(t, os.IsNotExist(err), "original log should be moved away")

	matches, _ := filepath.Glob(filepath.Join(dir, "test.log.*"))
	assert.NotEmpty(t, matches, "rotated backup should exist")
}

func TestLogRotation_BelowThreshold(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")
	require.NoError(t, os.WriteFile(logFile, []byte("small"), 0600))

	logger := &AppLogger{logger: newLogrus(&bytes.Buffer{}), maxFileSize: 1024, maxBackups: 2}
	logger.rotateIfNeeded(logFile)

	assert.True(t, FileExists(logFile))
}
