package scrivener

import "io"

// An Opt is a function that mutates a [Logger]'s attributes.
// An Opt should return the mutated Logger or an error if it fails to apply.
// An Opt should be used together with [New].
type Opt func(*Logger) (*Logger, error)

// The folder where the log files are stored. An empty folder is normalized to
// the default value "Logs".
func WithFolder(folder string) Opt {
	return func(l *Logger) (*Logger, error) {
		if len(folder) == 0 {
			folder = DefaultFolderPath
		}
		l.folder = folder
		return l, nil
	}
}

// The prefix of generated file names. Files are named <prefix><UTC timestamp>.log.
// The default value is "log_".
func WithPrefix(prefix string) Opt {
	return func(l *Logger) (*Logger, error) {
		l.prefix = prefix
		return l, nil
	}
}

// Maximum size in bytes per log file. The worker starts a new file once the
// current one would exceed this value. Zero or negative disables rotation.
// The default value is 100 [Mb].
func WithMaxSize(size int) Opt {
	return func(l *Logger) (*Logger, error) {
		l.maxSize = size
		return l, nil
	}
}

// Maximum number of rotated files to keep. After each rotation the oldest
// rotated files beyond this count are deleted. Zero or negative keeps
// everything, which is the default.
func WithMaxFiles(n int) Opt {
	return func(l *Logger) (*Logger, error) {
		l.maxFiles = n
		return l, nil
	}
}

// Rotate on a cron schedule in addition to the size threshold. The format
// follows [github.com/robfig/cron/v3]. An empty format, the default, disables
// scheduled rotation.
func WithCron(format string) Opt {
	return func(l *Logger) (*Logger, error) {
		l.cronFormat = format
		return l, nil
	}
}

// Where flush failures and other diagnostics are reported. A nil writer, the
// default, reports to stderr. Logging failures never propagate to callers, so
// this is the only place they surface.
func WithDiagnostics(w io.Writer) Opt {
	return func(l *Logger) (*Logger, error) {
		l.diag = w
		return l, nil
	}
}

// FromConfig applies a configuration record, typically loaded with
// [LoadConfig]. The record is normalized and copied; mutating cfg afterwards
// does not affect the Logger.
func FromConfig(cfg Config) Opt {
	return func(l *Logger) (*Logger, error) {
		cfg = cfg.Clone()
		opts := []Opt{
			WithFolder(cfg.LogFolderPath),
			WithPrefix(cfg.LogFileName),
			WithMaxSize(cfg.MaxBytes()),
			WithMaxFiles(cfg.MaxFiles),
			WithCron(cfg.CronSchedule),
		}
		var err error
		for _, opt := range opts {
			l, err = opt(l)
			if err != nil {
				return nil, err
			}
		}
		return l, nil
	}
}
