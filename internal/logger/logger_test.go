package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Components: map[Component]bool{
			ComponentApp:    true,
			ComponentCipher: true,
		},
	})
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(WARN, FormatText)

	cl := l.WithComponent(ComponentApp)
	cl.Debug("debug message")
	cl.Info("info message")
	cl.Warn("warn message")
	cl.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-threshold entries were written: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error entries, got %q", out)
	}
}

func TestComponentFiltering(t *testing.T) {
	l, buf := newBufferLogger(DEBUG, FormatText)

	l.WithComponent(ComponentCipher).Info("cipher on")
	l.WithComponent(ComponentClient).Info("client off")

	out := buf.String()
	if !strings.Contains(out, "cipher on") {
		t.Errorf("enabled component was filtered: %q", out)
	}
	if strings.Contains(out, "client off") {
		t.Errorf("disabled component leaked through: %q", out)
	}
}

func TestEnableDisableComponent(t *testing.T) {
	l, buf := newBufferLogger(DEBUG, FormatText)

	l.EnableComponent(ComponentClient)
	l.WithComponent(ComponentClient).Info("now enabled")
	l.DisableComponent(ComponentClient)
	l.WithComponent(ComponentClient).Info("now disabled")

	out := buf.String()
	if !strings.Contains(out, "now enabled") {
		t.Errorf("entry missing after EnableComponent: %q", out)
	}
	if strings.Contains(out, "now disabled") {
		t.Errorf("entry written after DisableComponent: %q", out)
	}
}

func TestTextFormat(t *testing.T) {
	l, buf := newBufferLogger(DEBUG, FormatText)

	l.WithComponent(ComponentApp).Info("hello", map[string]interface{}{"url": "https://x"})

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "[INFO] [app] hello") {
		t.Errorf("unexpected text format: %q", out)
	}
	if !strings.Contains(out, "url=https://x") {
		t.Errorf("fields missing from text format: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	l, buf := newBufferLogger(DEBUG, FormatJSON)

	l.WithComponent(ComponentApp).Error("boom")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry.Component != ComponentApp || entry.Message != "boom" || entry.Level != ERROR {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"DEBUG", DEBUG, false},
		{"info", INFO, false},
		{"Warning", WARN, false},
		{"ERROR", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEnvironmentConfig(t *testing.T) {
	t.Setenv("SIGCIPHER_LOG_LEVEL", "debug")
	t.Setenv("SIGCIPHER_LOG_FORMAT", "json")
	t.Setenv("SIGCIPHER_LOG_OUTPUT", "stderr")
	t.Setenv("SIGCIPHER_LOG_COMPONENTS", "cipher, client")

	cfg := EnvironmentConfig()
	if cfg.Level != "debug" || cfg.Format != "json" || cfg.Output != "stderr" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.Components["cipher"] || !cfg.Components["client"] {
		t.Errorf("components not parsed: %+v", cfg.Components)
	}
	if cfg.Components["app"] {
		t.Error("explicit component list should replace defaults")
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("ValidateConfig() error: %v", err)
	}
}

func TestValidateConfigRejectsUnknownValues(t *testing.T) {
	cfg := DefaultLogConfig()
	cfg.Output = "syslog"
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("ValidateConfig() expected error for unknown output")
	}
}
