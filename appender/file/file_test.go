package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nilsbrandt/corelog/core"
)

func TestFile_WriteAndTeardown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	f := New(Config{Filename: path})
	if err := f.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	record := core.NewRecord(core.Info, "hello file", "svc", false)
	if err := f.Write(record); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Teardown(); err != nil {
		t.Fatalf("Teardown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("file contents missing message: %q", data)
	}
}

func TestFile_Setup_MissingFilename(t *testing.T) {
	f := New(Config{})
	if err := f.Setup(); err == nil {
		t.Error("Setup() with no filename should fail")
	}
}

func TestFile_RotatesOnMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	f := New(Config{Filename: path, MaxSize: 1})
	if err := f.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer f.Teardown()

	if err := f.Write(core.NewRecord(core.Info, "first", "", false)); err != nil {
		t.Fatalf("Write 1: %v", err)
	}
	if err := f.Write(core.NewRecord(core.Info, "second", "", false)); err != nil {
		t.Fatalf("Write 2: %v", err)
	}
	f.Teardown()

	matches, err := filepath.Glob(path + ".*")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) == 0 {
		t.Error("expected a rotated backup file, found none")
	}
}
