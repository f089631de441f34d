package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetLogFilePath(t *testing.T) {
	tests := []struct {
		day    int
		suffix int
	}{
		{1, 0}, {9, 0}, {10, 1}, {19, 1}, {20, 2}, {31, 2},
	}
	for _, tt := range tests {
		day := time.Date(2026, time.January, tt.day, 12, 0, 0, 0, time.UTC)
		path, suffix := getLogFilePath("logs", "stdlog", day)
		if suffix != tt.suffix {
			t.Errorf("day %d: suffix = %d, want %d", tt.day, suffix, tt.suffix)
		}
		want := filepath.Join("logs", "stdlog-"+string(rune('0'+tt.suffix))+".log")
		if path != want {
			t.Errorf("day %d: path = %s, want %s", tt.day, path, want)
		}
	}
}

func TestRotateRemovesNextSlot(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"errors-0.log", "errors-2.log"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rotateLogs(dir, "errors", 1)

	if _, err := os.Stat(filepath.Join(dir, "errors-2.log")); !os.IsNotExist(err) {
		t.Errorf("errors-2.log should have been removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "errors-0.log")); err != nil {
		t.Errorf("errors-0.log should be kept: %v", err)
	}
}

func TestFileLog(t *testing.T) {
	dir := t.TempDir()
	now = func() time.Time { return time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC) }
	defer func() { now = time.Now }()

	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if err := EnableFileLog(dir); err != nil {
		t.Fatal(err)
	}
	defer DisableFileLog()

	LogMessage(INFO, "printer opened")
	err := errors.New("write failed")
	PrintIfErr("raster", &err)

	std, rerr := os.ReadFile(filepath.Join(dir, "stdlog-1.log"))
	if rerr != nil {
		t.Fatal(rerr)
	}
	if !strings.Contains(string(std), "printer opened") {
		t.Errorf("stdlog-1.log = %q", std)
	}
	errs, rerr := os.ReadFile(filepath.Join(dir, "errors-1.log"))
	if rerr != nil {
		t.Fatal(rerr)
	}
	if !strings.Contains(string(errs), "write failed") {
		t.Errorf("errors-1.log = %q", errs)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
