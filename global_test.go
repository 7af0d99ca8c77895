package scrivener

import (
	"testing"
)

func TestDefaultInstanceIsSharedAndReplaceable(t *testing.T) {
	first, err := Replace(Config{LogFolderPath: t.TempDir(), LogFileName: "log_", MaxFileSizeInMB: 1})
	if err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}

	if Default() != first {
		t.Error("expected Default to return the installed instance")
	}
	if Default() != Default() {
		t.Error("expected Default to return the same instance every time")
	}

	folder := t.TempDir()
	second, err := Replace(Config{LogFolderPath: folder, LogFileName: "log_", MaxFileSizeInMB: 1})
	if err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}
	t.Cleanup(second.Dispose)

	if !first.disposing.Load() {
		t.Error("expected Replace to dispose the previous default")
	}
	if Default() != second {
		t.Error("expected Default to return the replacement instance")
	}

	// The package-level helpers write through the installed default.
	Info("through the default instance")
	second.Stop()
	if !containsLine(t, folder, "through the default instance") {
		t.Error("expected the message in the replacement's folder")
	}
}

func TestReplaceRejectsBadConfig(t *testing.T) {
	if _, err := Replace(Config{CronSchedule: "not a schedule"}); err == nil {
		t.Fatal("Replace() succeeded unexpectedly")
	}
}
