package scrivener

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trviph/collection"
)

// Layout of the UTC timestamp embedded in generated file names.
const fileStampLayout = "20060102.150405"

// appendToFile writes data to the current log file, creating the folder and
// generating a file name on first use. The handle is opened and closed per
// call so external tools can read, move, or delete files between flushes.
func (l *Logger) appendToFile(data []byte) error {
	if l.currentPath == "" {
		if err := os.MkdirAll(l.folder, 0755); err != nil {
			return fmt.Errorf("failed to create log folder, caused by %w", err)
		}
		l.currentPath = l.nextFilePath()
		l.currentSize = 0
	}
	file, err := os.OpenFile(l.currentPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file, caused by %w", err)
	}
	n, err := file.Write(data)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to append to log file, caused by %w", err)
	}
	l.currentSize += n
	return nil
}

// syncCurrentSize refreshes the size counter from the file itself, since
// external tools may truncate or remove the current file between flushes. A
// vanished file simply means the next append starts a new one.
func (l *Logger) syncCurrentSize() {
	if l.currentPath == "" {
		return
	}
	stat, err := os.Stat(l.currentPath)
	if err != nil {
		l.currentPath = ""
		l.currentSize = 0
		return
	}
	l.currentSize = int(stat.Size())
}

// rotate abandons the current file; the next append starts a new one. The old
// file needs no closing since handles are not held across flushes. When
// retention is enabled the rotated file joins the archive ledger and the
// oldest archives beyond the limit are removed.
func (l *Logger) rotate() {
	if l.currentPath == "" {
		return
	}
	rotated := l.currentPath
	l.currentPath = ""
	l.currentSize = 0

	if l.maxFiles <= 0 {
		return
	}
	l.archives.Append(rotated)
	for l.archives.Length() > l.maxFiles {
		oldest, err := l.archives.Dequeue()
		if err != nil {
			l.reportf("failed to get oldest archive name, caused by %v", err)
			return
		}
		if err := os.Remove(oldest); err != nil {
			l.reportf("failed to remove oldest archive %s, caused by %v", oldest, err)
		}
	}
}

// nextFilePath generates a fresh file path <folder>/<prefix><UTC stamp>.log.
// Stamps repeating within the same second get a monotonic -N suffix so a
// rotation never silently overwrites an earlier file.
func (l *Logger) nextFilePath() string {
	stamp := now().UTC().Format(fileStampLayout)
	if stamp == l.lastStamp {
		l.stampSeq++
		return filepath.Join(l.folder, fmt.Sprintf("%s%s-%d.log", l.prefix, stamp, l.stampSeq))
	}
	l.lastStamp = stamp
	l.stampSeq = 0
	return filepath.Join(l.folder, fmt.Sprintf("%s%s.log", l.prefix, stamp))
}

type fileInfo struct {
	filePath string
	modtime  time.Time
}

// scanArchives lists existing log files for the prefix, oldest first, so a
// restarted Logger resumes pruning where the previous run left off. A missing
// folder yields an empty list, not an error; the folder is created lazily on
// first write.
func scanArchives(folder, prefix string) (*collection.List[string], error) {
	matches, err := filepath.Glob(filepath.Join(folder, prefix+"*.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan archives, caused by %w", err)
	}

	minHeap, err := collection.NewHeap(func(current, other *fileInfo) bool {
		return current.modtime.Before(other.modtime)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get heap, caused by %w", err)
	}
	for _, match := range matches {
		info, err := getFileInfo(match)
		if err != nil {
			return nil, fmt.Errorf("failed to get file info %s, caused by %w", match, err)
		}
		minHeap.Push(info)
	}

	l := collection.NewList[string]()
	for !minHeap.IsEmpty() {
		oldest, err := minHeap.Pop()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info, caused by %w", err)
		}
		l.Append(oldest.filePath)
	}
	return l, nil
}

func getFileInfo(filePath string) (*fileInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed get file stat, caused by %w", err)
	}
	return &fileInfo{
		filePath: filePath,
		modtime:  stat.ModTime(),
	}, nil
}
