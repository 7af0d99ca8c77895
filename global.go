package scrivener

import "sync"

// DefaultSettingsPath is the well-known settings file the default instance is
// configured from when it is first requested.
const DefaultSettingsPath = "scrivener.yaml"

// The process-wide default instance, created lazily by [Default].
var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide default Logger, creating and starting it
// on first use from [DefaultSettingsPath]. A missing or corrupt settings file
// falls back to [DefaultConfig]. The same instance is returned to every
// caller until [Replace] installs a new one.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = newDefault(LoadConfigOrDefault(DefaultSettingsPath))
	}
	return defaultLogger
}

// Replace builds a started Logger from cfg and installs it as the default
// instance, disposing the previous default first. It returns the new default.
func Replace(cfg Config) (*Logger, error) {
	l, err := New(FromConfig(cfg))
	if err != nil {
		return nil, err
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.Dispose()
	}
	l.Start()
	defaultLogger = l
	return l, nil
}

func newDefault(cfg Config) *Logger {
	l, err := New(FromConfig(cfg))
	if err != nil {
		// Settings problems fall back to defaults instead of surfacing;
		// the default configuration itself cannot fail.
		l, _ = New()
	}
	l.Start()
	return l
}

// Debug writes v with the DEBUG label through the default instance.
func Debug(v any) { Default().Debug(v) }

// Info writes v with the INFO label through the default instance.
func Info(v any) { Default().Info(v) }

// Warn writes v with the WARN label through the default instance.
func Warn(v any) { Default().Warn(v) }

// Error writes v with the ERROR label through the default instance.
func Error(v any) { Default().Error(v) }

// Fatal writes v with the FATAL label through the default instance.
func Fatal(v any) { Default().Fatal(v) }
