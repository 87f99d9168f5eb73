package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nilsbrandt/corelog/core"
)

func TestConsole_WriteUsesRenderer(t *testing.T) {
	var buf bytes.Buffer
	c := New(Config{Writer: &buf})

	if err := c.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer c.Teardown()

	record := core.NewRecord(core.Info, "started", "boot", false)
	if err := c.Write(record); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if !strings.Contains(buf.String(), "started") {
		t.Errorf("output missing message: %q", buf.String())
	}
}

func TestConsole_NameDefault(t *testing.T) {
	c := New(Config{})
	if c.Name() != "console" {
		t.Errorf("Name() = %q, want console", c.Name())
	}
}

func TestConsole_TryRestartAlwaysTrue(t *testing.T) {
	c := New(Config{})
	if !c.TryRestart() {
		t.Error("TryRestart() = false, want true")
	}
}
