package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func jsonLogger(buf *bytes.Buffer, level string) *Logger {
	cfg := &Config{Level: level, Format: "json"}
	return NewWithWriter(buf, cfg, "credseal")
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line")
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid json log line %q: %v", line, err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("credseal")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "credseal" {
		t.Errorf("expected service 'credseal', got %q", l.service)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info")
	l.Info("sealed", Fields(FieldOperation, "login"))

	m := decodeLine(t, &buf)
	if m["message"] != "sealed" {
		t.Errorf("expected message 'sealed', got %v", m["message"])
	}
	if m[FieldOperation] != "login" {
		t.Errorf("expected operation field, got %v", m[FieldOperation])
	}
	if m["service"] != "credseal" {
		t.Errorf("expected service field, got %v", m["service"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "warn")
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn line, got %q", buf.String())
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "nonsense")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info level, got %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").WithComponent("credentials").Info("x")
	if m := decodeLine(t, &buf); m[FieldComponent] != "credentials" {
		t.Errorf("expected component field, got %v", m[FieldComponent])
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info")

	if l.WithContext(context.Background()) != l {
		t.Error("expected same logger when context has no request id")
	}

	ctx := ContextWithRequestID(context.Background(), "req-1")
	l.WithContext(ctx).Info("x")
	if m := decodeLine(t, &buf); m[FieldRequestID] != "req-1" {
		t.Errorf("expected request id, got %v", m[FieldRequestID])
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
	ctx := ContextWithRequestID(context.Background(), "abc")
	if got := RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").
		WithFields(Fields(FieldAlgorithm, "aes-256-cbc-salted")).
		WithError(errors.New("boom")).
		Error("failed")

	m := decodeLine(t, &buf)
	if m[FieldAlgorithm] != "aes-256-cbc-salted" {
		t.Errorf("expected algorithm field, got %v", m[FieldAlgorithm])
	}
	if m["error"] != "boom" {
		t.Errorf("expected error field, got %v", m["error"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Level: "info", Format: "console", NoColor: true}
	NewWithWriter(&buf, cfg, "credseal").Warn("careful")

	out := buf.String()
	if !strings.Contains(out, "[CRE][WRN]") {
		t.Errorf("expected service and level tags, got %q", out)
	}
	if !strings.Contains(out, "careful") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(jsonLogger(&buf, "debug"))
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger")
	}
}

func TestGet(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(jsonLogger(&buf, "info"))
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Get("cli").Info("x")
	if !strings.Contains(buf.String(), `"component":"cli"`) {
		t.Errorf("expected component tag, got %q", buf.String())
	}
}

func TestGetFollowsGlobalLogger(t *testing.T) {
	var first, second bytes.Buffer
	SetGlobalLogger(jsonLogger(&first, "info"))
	t.Cleanup(func() { SetGlobalLogger(nil) })
	Get("credentials").Info("one")

	SetGlobalLogger(jsonLogger(&second, "info"))
	Get("credentials").Info("two")

	if strings.Contains(first.String(), "two") || !strings.Contains(second.String(), "two") {
		t.Errorf("expected Get to use the current global logger, first=%q second=%q", first.String(), second.String())
	}
}

func TestInit(t *testing.T) {
	Init(Config{Level: "error", Format: "json"}, "credseal")
	t.Cleanup(func() { SetGlobalLogger(nil) })

	l := GetGlobalLogger()
	if l.service != "credseal" {
		t.Errorf("expected service 'credseal', got %q", l.service)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "warn" {
		t.Errorf("expected level 'warn', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stderr"}, false},
		{"pretty", Config{Level: "debug", Format: "pretty", Output: "stdout"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stderr"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(m) != 2 {
		t.Errorf("expected 2 fields, got %v", m)
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("seal_login", errors.New("boom"))
	if m[FieldOperation] != "seal_login" || m[FieldError] != "boom" {
		t.Errorf("unexpected fields %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("seal_login", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}
