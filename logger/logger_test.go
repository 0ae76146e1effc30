package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLevel_String tests the string representation of log levels
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("Level(%d).String() = %q, want %q", test.level, got, test.expected)
		}
	}
}

// TestNewLogger tests creating a new logger
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(INFO, &buf)

	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}

	logger.Info("test message")
	output := buf.String()

	if !strings.Contains(output, "test message") {
		t.Errorf("Expected log output to contain 'test message', got: %s", output)
	}

	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected log output to contain '[INFO]', got: %s", output)
	}
}

// TestLevelFiltering tests that messages below the level are suppressed
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WARN, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below WARN, got: %s", buf.String())
	}

	logger.Warn("warn message")
	logger.Error("error message")
	output := buf.String()
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("Expected WARN output, got: %s", output)
	}
	if !strings.Contains(output, "[ERROR] error message") {
		t.Errorf("Expected ERROR output, got: %s", output)
	}
}

// TestSetLevel tests changing the level on a live logger
func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(ERROR, &buf)

	logger.Debug("hidden")
	logger.SetLevel(DEBUG)
	logger.Debug("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected 'hidden' to be suppressed, got: %s", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("Expected 'visible' after SetLevel(DEBUG), got: %s", output)
	}
}

// TestOffLevel tests that OFF suppresses everything
func TestOffLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(OFF, &buf)

	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")

	if buf.Len() != 0 {
		t.Errorf("Expected no output with OFF level, got: %s", buf.String())
	}
}

// TestDiscardLogger tests the discard logger
func TestDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	if logger == nil {
		t.Fatal("NewDiscardLogger() returned nil")
	}

	// None of these should panic or produce output.
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
	logger.SetLevel(DEBUG)
}

// TestDefaultLogger tests the global default logger accessors
func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)
	Error("error %d", 4)

	output := buf.String()
	for _, want := range []string{"debug 1", "info 2", "warn 3", "error 4"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}
