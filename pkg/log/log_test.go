package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetOutputAndLevel(t *testing.T) {
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetLogLevel(logrus.InfoLevel)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLogLevel(logrus.WarnLevel)

	GetLogger().Info("hidden")
	GetLogger().WithField("widget", "w1").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "widget=w1") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() {
		_ = Close()
		SetOutput(io.Discard)
	})

	path := filepath.Join(t.TempDir(), "typeahead.log")
	SetOutputFile(path)
	GetLogger().Info("to file")
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("log file content: %q", data)
	}
}
