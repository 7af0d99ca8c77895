package scrivener

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/trviph/collection"
)

// A Hook is a callback invoked synchronously on the caller's goroutine for
// every message before it is queued. Hooks run in registration order and may
// mutate the message or call [Message.Cancel] to suppress it; once a hook
// cancels, the remaining hooks are skipped.
type Hook func(*Message)

// A Logger accepts labeled text messages from any number of goroutines and
// persists them to rotating flat files on a single background worker, so
// callers never wait on file I/O. Use [New] to create a Logger, [Logger.Start]
// before writing, and [Logger.Dispose] when done with it.
type Logger struct {
	// See [WithFolder] for documentation.
	folder string
	// See [WithPrefix] for documentation.
	prefix string
	// See [WithMaxSize] for documentation.
	maxSize int
	// See [WithMaxFiles] for documentation.
	maxFiles int
	// See [WithCron] for documentation.
	cronFormat string
	// See [WithDiagnostics] for documentation.
	diag io.Writer

	cronScheduler *cron.Cron

	queue *queue
	wg    sync.WaitGroup

	mu        sync.Mutex
	started   atomic.Bool
	disposing atomic.Bool

	hookMu     sync.RWMutex
	hooks      []hookEntry
	nextHookID int

	// Worker-owned state below; only the worker goroutine touches it after
	// construction, so no locking is needed.
	currentPath string
	currentSize int
	lastStamp   string
	stampSeq    int
	forceRotate atomic.Bool
	archives    *collection.List[string]
}

type hookEntry struct {
	id int
	fn Hook
}

// New creates a Logger with the provided options. Without options the Logger
// writes files named log_<timestamp>.log into the "Logs" folder and rotates
// them at 100 Mebibytes. The returned Logger is not yet started; call
// [Logger.Start] before writing.
//
// Example usage:
//
//	logger, err := scrivener.New(
//		scrivener.WithFolder("Logs"),
//		scrivener.WithMaxSize(10*scrivener.Mb),
//	)
func New(opts ...Opt) (*Logger, error) {
	defaultOpts := []Opt{
		WithFolder(DefaultFolderPath),
		WithPrefix(DefaultFilePrefix),
		WithMaxSize(DefaultMaxFileSizeMB * Mb),
		WithMaxFiles(0),
		WithCron(""),
		WithDiagnostics(nil),
	}
	finalOpts := append(defaultOpts, opts...)

	l := &Logger{queue: newQueue()}
	var err error
	for _, opt := range finalOpts {
		l, err = opt(l)
		if err != nil {
			return nil, fmt.Errorf("failed to create new logger, caused by %w", err)
		}
	}

	if l.maxFiles > 0 {
		archives, err := scanArchives(l.folder, l.prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to create new logger, caused by %w", err)
		}
		l.archives = archives
	} else {
		l.archives = collection.NewList[string]()
	}

	if err := l.setupCron(); err != nil {
		return nil, fmt.Errorf("failed to create new logger, caused by %w", err)
	}

	l.wg.Add(1)
	go l.work()
	return l, nil
}

func (l *Logger) setupCron() error {
	if len(l.cronFormat) == 0 {
		return nil
	}
	l.cronScheduler = cron.New()
	if _, err := l.cronScheduler.AddFunc(l.cronFormat, func() { l.Rotate() }); err != nil {
		return fmt.Errorf("failed to setup cron, caused by %w", err)
	}
	go l.cronScheduler.Run()
	return nil
}

// Start makes the Logger accept writes. It is a no-op if the Logger is
// already started or has been disposed. A "Logger started" line is emitted
// through the normal write path.
func (l *Logger) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started.Load() || l.disposing.Load() {
		return
	}
	l.started.Store(true)
	l.WriteLabeled(LabelInfo, "Logger started")
}

// Stop emits a "Logger stopped" line, stops accepting writes, and blocks
// until every message queued before the call is flushed to disk. This is the
// only blocking call in the API. Messages written concurrently with Stop may
// or may not be included. Stop is a no-op if the Logger is not started.
func (l *Logger) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started.Load() || l.disposing.Load() {
		return
	}
	l.WriteLabeled(LabelInfo, "Logger stopped")
	l.started.Store(false)

	done := make(chan struct{})
	l.queue.push(envelope{barrier: done})
	<-done
}

// Dispose stops the Logger if it is started, draining queued messages in the
// process, then shuts the worker down permanently. Dispose is idempotent;
// calling it again has no effect. Writes after Dispose are silently dropped.
func (l *Logger) Dispose() {
	l.Stop()
	if !l.disposing.CompareAndSwap(false, true) {
		return
	}
	if l.cronScheduler != nil {
		l.cronScheduler.Stop()
	}
	// One final wake so the worker observes the disposing flag and exits.
	l.queue.signal()
	l.wg.Wait()
}

// Rotate asks the worker to begin a new file at its next flush, regardless of
// the size threshold. It returns immediately.
func (l *Logger) Rotate() {
	l.forceRotate.Store(true)
	l.queue.signal()
}

// Write submits an unlabeled message. It never blocks on I/O; the message is
// queued for the background worker. Writes on a Logger that is not started
// are silently dropped.
func (l *Logger) Write(text string) {
	l.WriteLabeled("", text)
}

// WriteLabeled submits a message with the given label. The pre-write hooks
// run synchronously on the calling goroutine and may alter or cancel the
// message before it is queued.
func (l *Logger) WriteLabeled(label, text string) {
	if !l.started.Load() {
		return
	}
	msg := &Message{Timestamp: now(), Label: label, Text: text}
	l.fireHooks(msg)
	if msg.Canceled() {
		return
	}
	l.queue.push(envelope{msg: msg})
}

// Debug writes v with the DEBUG label. v may be a string or any value, which
// is converted with fmt.Sprint; a nil v skips the write entirely.
func (l *Logger) Debug(v any) { l.writeAny(LabelDebug, v) }

// Info writes v with the INFO label. See [Logger.Debug] for conversion rules.
func (l *Logger) Info(v any) { l.writeAny(LabelInfo, v) }

// Warn writes v with the WARN label. See [Logger.Debug] for conversion rules.
func (l *Logger) Warn(v any) { l.writeAny(LabelWarn, v) }

// Error writes v with the ERROR label. See [Logger.Debug] for conversion rules.
func (l *Logger) Error(v any) { l.writeAny(LabelError, v) }

// Fatal writes v with the FATAL label. It does not terminate the process.
func (l *Logger) Fatal(v any) { l.writeAny(LabelFatal, v) }

func (l *Logger) writeAny(label string, v any) {
	if v == nil {
		return
	}
	text, ok := v.(string)
	if !ok {
		text = fmt.Sprint(v)
	}
	l.WriteLabeled(label, text)
}

// Subscribe registers a pre-write hook and returns an id for
// [Logger.Unsubscribe]. Hooks run in registration order.
func (l *Logger) Subscribe(h Hook) int {
	l.hookMu.Lock()
	defer l.hookMu.Unlock()
	l.nextHookID++
	// Copy on write so a snapshot taken by fireHooks stays valid.
	hooks := make([]hookEntry, len(l.hooks), len(l.hooks)+1)
	copy(hooks, l.hooks)
	l.hooks = append(hooks, hookEntry{id: l.nextHookID, fn: h})
	return l.nextHookID
}

// Unsubscribe removes the hook registered under id. Unknown ids are ignored.
func (l *Logger) Unsubscribe(id int) {
	l.hookMu.Lock()
	defer l.hookMu.Unlock()
	hooks := make([]hookEntry, 0, len(l.hooks))
	for _, e := range l.hooks {
		if e.id != id {
			hooks = append(hooks, e)
		}
	}
	l.hooks = hooks
}

func (l *Logger) fireHooks(m *Message) {
	l.hookMu.RLock()
	hooks := l.hooks
	l.hookMu.RUnlock()
	for _, e := range hooks {
		e.fn(m)
		if m.Canceled() {
			return
		}
	}
}
