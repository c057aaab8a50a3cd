package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelSilent)
	})

	SetLevel(LevelSilent)
	Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("silent level produced output: %q", buf.String())
	}

	SetLevel(LevelWarn)
	Debug("hidden %d", 1)
	Warn("visible %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug leaked at warn level")
	}
	if !strings.Contains(out, "visible 2") || !strings.Contains(out, "WARN") {
		t.Errorf("warn output = %q", out)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("now shown")
	if !strings.Contains(buf.String(), "now shown") {
		t.Errorf("debug output = %q", buf.String())
	}
}
