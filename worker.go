package scrivener

import (
	"bytes"
	"fmt"
	"os"
)

// work is the consumer loop. It waits on the wake signal, drains the whole
// queue per wake, and exits when it observes the disposing flag after a wake.
// Failures inside the loop go to the diagnostic writer and never escape; a
// logging failure must not take down the program being logged.
func (l *Logger) work() {
	defer l.wg.Done()
	for range l.queue.wake {
		if l.disposing.Load() {
			return
		}
		l.flush()
	}
}

// flush drains the queue, formats each message, and appends the batch to the
// current file. Lines are accumulated in memory and written once per file
// segment, so a burst of messages costs one open/write/close instead of one
// per message. The size threshold is checked as the batch grows; when the
// next line would push the current file past it, the batch so far is written
// and a new file begins.
func (l *Logger) flush() {
	l.syncCurrentSize()
	if l.forceRotate.Swap(false) && l.currentPath != "" {
		l.rotate()
	}

	var buf bytes.Buffer
	for {
		env, ok := l.queue.pop()
		if !ok {
			break
		}
		if env.barrier != nil {
			l.writeBatch(&buf)
			close(env.barrier)
			continue
		}
		line := env.msg.line()
		if line == "" {
			continue
		}
		if l.shouldRotate(buf.Len(), len(line)) {
			l.writeBatch(&buf)
			l.rotate()
		}
		buf.WriteString(line)
	}
	l.writeBatch(&buf)
}

// shouldRotate reports whether appending nextLen more bytes after the pending
// bytes would push the current file past the size threshold. With no bytes
// written yet the answer is always no, so a fresh file accepts at least one
// line and an oversized single message still lands somewhere.
func (l *Logger) shouldRotate(pending, nextLen int) bool {
	if l.maxSize <= 0 {
		return false
	}
	written := l.currentSize + pending
	return written > 0 && written+nextLen > l.maxSize
}

// writeBatch appends the buffered lines to the current file and resets the
// buffer. On failure the batch is reported and lost; delivery is best effort.
func (l *Logger) writeBatch(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	if err := l.appendToFile(buf.Bytes()); err != nil {
		l.reportf("failed to write %d bytes to log file, caused by %v", buf.Len(), err)
	}
	buf.Reset()
}

// reportf writes a diagnostic line to the fallback channel, stderr unless
// overridden with [WithDiagnostics].
func (l *Logger) reportf(format string, args ...any) {
	out := l.diag
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "scrivener: "+format+"\n", args...)
}
