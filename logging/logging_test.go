package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelWarn,
		Output: &buf,
	})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") {
		t.Error("expected DEBUG to be filtered out")
	}
	if strings.Contains(output, "[INFO]") {
		t.Error("expected INFO to be filtered out")
	}
	if !strings.Contains(output, "[WARN]") {
		t.Error("expected WARN in output")
	}
	if !strings.Contains(output, "[ERROR]") {
		t.Error("expected ERROR in output")
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
		Prefix: "test",
	})

	logger.Info("registered %s under %q", "Ctrl+S", "normal")

	output := buf.String()
	if !strings.Contains(output, `registered Ctrl+S under "normal"`) {
		t.Errorf("expected formatted message, got: %s", output)
	}
	if !strings.Contains(output, "test:") {
		t.Error("expected prefix in output")
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.WithField("window", "w1").Info("test")

	output := buf.String()
	if !strings.Contains(output, "window=w1") {
		t.Errorf("expected field in output, got: %s", output)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.WithComponent("engine").Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=engine") {
		t.Errorf("expected component in output, got: %s", output)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelError,
		Output: &buf,
	})

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output at error level")
	}

	logger.SetLevel(LogLevelInfo)
	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Error("expected output after SetLevel")
	}
}

func TestLoggerDisableEnable(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.Disable()
	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output when disabled")
	}

	logger.Enable()
	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Error("expected output when enabled")
	}
}

func TestNullLogger(t *testing.T) {
	// NullLogger should not panic
	NullLogger.Debug("test")
	NullLogger.Info("test")
	NullLogger.Warn("test")
	NullLogger.Error("test")
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	if logger == nil {
		t.Fatal("GetLogger() returned nil")
	}

	// Should return same instance
	logger2 := GetLogger()
	if logger != logger2 {
		t.Error("expected GetLogger() to return same instance")
	}
}
