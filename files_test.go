package scrivener

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNextFilePath(t *testing.T) {
	pinned, _ := time.Parse(time.RFC3339, "2026-08-30T10:15:02Z")
	now = func() time.Time { return pinned }
	t.Cleanup(func() { now = time.Now })

	folder := t.TempDir()
	l, err := New(WithFolder(folder), WithPrefix("log_"))
	if err != nil {
		t.Fatalf("could not construct receiver type: %v", err)
	}
	defer l.Dispose()

	tests := []struct {
		name string // description of this test case
		want string
	}{
		{
			name: "first name carries the plain stamp",
			want: filepath.Join(folder, "log_20260830.101502.log"),
		},
		{
			name: "same-second collision gets sequence 1",
			want: filepath.Join(folder, "log_20260830.101502-1.log"),
		},
		{
			name: "next collision increments the sequence",
			want: filepath.Join(folder, "log_20260830.101502-2.log"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.nextFilePath()
			if tt.want != got {
				t.Errorf("nextFilePath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextFilePathResetsSequenceOnNewStamp(t *testing.T) {
	pinned, _ := time.Parse(time.RFC3339, "2026-08-30T10:15:02Z")
	now = func() time.Time { return pinned }
	t.Cleanup(func() { now = time.Now })

	folder := t.TempDir()
	l, err := New(WithFolder(folder), WithPrefix("log_"))
	if err != nil {
		t.Fatalf("could not construct receiver type: %v", err)
	}
	defer l.Dispose()

	l.nextFilePath()
	l.nextFilePath() // sequence 1
	pinned = pinned.Add(time.Second)

	got := l.nextFilePath()
	want := filepath.Join(folder, "log_20260830.101503.log")
	if got != want {
		t.Errorf("nextFilePath() = %v, want %v", got, want)
	}
}

func TestScanArchivesOrdersOldestFirst(t *testing.T) {
	folder := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"log_b.log", "log_c.log", "log_a.log"}
	for i, name := range names {
		path := filepath.Join(folder, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		// Modification time, not name, decides ordering.
		stamp := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatalf("failed to set times on %s: %v", name, err)
		}
	}

	archives, err := scanArchives(folder, "log_")
	if err != nil {
		t.Fatalf("scanArchives() failed: %v", err)
	}
	for _, want := range names {
		got, err := archives.Dequeue()
		if err != nil {
			t.Fatalf("failed to dequeue archive: %v", err)
		}
		if filepath.Base(got) != want {
			t.Errorf("archive order: got %s, want %s", filepath.Base(got), want)
		}
	}
}

func TestScanArchivesMissingFolder(t *testing.T) {
	archives, err := scanArchives(filepath.Join(t.TempDir(), "absent"), "log_")
	if err != nil {
		t.Fatalf("scanArchives() failed: %v", err)
	}
	if archives.Length() != 0 {
		t.Errorf("expected no archives, got %d", archives.Length())
	}
}
