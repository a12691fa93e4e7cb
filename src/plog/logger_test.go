package plog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestLevelGating(t *testing.T) {
	buf := capture(t)
	SetLevel("warn")
	defer SetLevel("info")

	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("shown warn")
	Errorf("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown warn") || !strings.Contains(out, "[ERROR] shown error") {
		t.Fatalf("expected warn and error output, got: %s", out)
	}
}

func TestSetLevelUnknownNameIgnored(t *testing.T) {
	SetLevel("info")
	SetLevel("chatty")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level name changed the level to %v", GetLevel())
	}
}

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLevel("info")

	msg := "render done (100.0% of 800x600) palette=sete"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 800x600)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}
