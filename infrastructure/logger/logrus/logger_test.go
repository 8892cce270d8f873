package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfo_WritesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.Info("discovery complete", map[string]interface{}{
		"url":   "https://example.com",
		"feeds": 2,
	})

	out := buf.String()
	if !strings.Contains(out, "discovery complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "url=") || !strings.Contains(out, "example.com") {
		t.Errorf("output missing url field: %q", out)
	}
	if !strings.Contains(out, "feeds=2") {
		t.Errorf("output missing feeds field: %q", out)
	}
}

func TestDebug_SuppressedAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.Debug("candidate rejected", nil)

	if buf.Len() != 0 {
		t.Errorf("debug line emitted at default level: %q", buf.String())
	}
}

func TestSetLevel_EnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)
	logger.SetLevel("debug")

	logger.Debug("candidate rejected", map[string]interface{}{"url": "https://example.com/feed"})

	if !strings.Contains(buf.String(), "candidate rejected") {
		t.Errorf("debug line not emitted after SetLevel: %q", buf.String())
	}
}

func TestSetLevel_UnknownNameIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)
	logger.SetLevel("nope")

	logger.Info("still works", nil)

	if !strings.Contains(buf.String(), "still works") {
		t.Errorf("logger broken by unknown level: %q", buf.String())
	}
}

func TestWarnAndError_AlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.Warn("slow response", nil)
	logger.Error("fetch failed", map[string]interface{}{"error": "connection refused"})

	out := buf.String()
	if !strings.Contains(out, "slow response") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "fetch failed") {
		t.Errorf("error line missing: %q", out)
	}
}
