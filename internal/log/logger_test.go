package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestAppLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, false)

	logger.Info("info %s", "message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if !strings.Contains(output, "[INFO] info message") {
		t.Errorf("缺少 INFO 日志，实际输出: %s", output)
	}
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("缺少 WARN 日志，实际输出: %s", output)
	}
	if !strings.Contains(output, "[ERROR] error message") {
		t.Errorf("缺少 ERROR 日志，实际输出: %s", output)
	}
}

func TestAppLogger_DebugSuppressedWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, false)

	logger.Debug("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Error("非 debug 模式不应输出 DEBUG 日志")
	}
}

func TestAppLogger_DebugEnabledInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, true)

	logger.Debug("visible %d", 42)
	if !strings.Contains(buf.String(), "[DEBUG] visible 42") {
		t.Errorf("debug 模式应输出 DEBUG 日志，实际: %s", buf.String())
	}
}

func TestAppLogger_CloseWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, false)
	if err := logger.Close(); err != nil {
		t.Errorf("无文件句柄时 Close 应返回 nil，实际: %v", err)
	}
}

func TestContainsPathTraversal(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"debug.log", false},
		{"/var/log/app.log", false},
		{"../etc/passwd", true},
		{"./relative.log", true},
		{"logs\\..\\secret", true},
	}
	for _, tt := range tests {
		if got := containsPathTraversal(tt.path); got != tt.expected {
			t.Errorf("containsPathTraversal(%q) = %v, 期望 %v", tt.path, got, tt.expected)
		}
	}
}
