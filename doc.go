// Scrivener is a Go package for asynchronous logging to rotating flat files.
//
// Callers submit labeled text messages from any number of goroutines; a single
// background worker per [Logger] drains them, formats one line per message, and
// appends batches to the current log file, starting a new file once the size
// threshold is exceeded. Writing never blocks on file I/O. The trade-off is
// deliberate: delivery is best effort, and a process crash can lose messages
// that were still queued.
//
// # The Logger
//
// Use [New] to create a Logger, [Logger.Start] before writing, and
// [Logger.Dispose] when done. [Logger.Stop] is the one blocking call: it
// returns only after everything queued before it is on disk.
//
//	import "github.com/scrivener-log/scrivener"
//
//	func main() {
//		logger, err := scrivener.New(
//			scrivener.WithFolder("Logs"),
//			scrivener.WithMaxSize(100*scrivener.Mb),
//		)
//		if err != nil {
//			// Handle error
//		}
//		logger.Start()
//		defer logger.Dispose()
//
//		logger.Info("service listening")
//		logger.Error("connection refused")
//	}
//
// Each line has the form
//
//	INFO [30 Aug 2026 10:15:02.123] service listening
//
// and files are named <prefix><UTC timestamp>.log inside the configured
// folder, for example Logs/log_20260830.101502.log.
//
// # Hooks
//
// A [Hook] subscribed with [Logger.Subscribe] runs synchronously on the
// calling goroutine before each message is queued. It may rewrite the label or
// text, or cancel the message outright:
//
//	logger.Subscribe(func(m *scrivener.Message) {
//		if strings.Contains(m.Text, "password") {
//			m.Cancel()
//		}
//	})
//
// # The default instance
//
// [Default] lazily creates a process-wide Logger from the settings file named
// by [DefaultSettingsPath], falling back to defaults when the file is absent.
// The package-level [Info], [Error] and friends write through it. [Replace]
// swaps in a freshly configured default, disposing the old one.
//
// # Failure behavior
//
// Logging failures never crash the calling application. Flush errors are
// reported on the diagnostic writer (stderr unless [WithDiagnostics] overrides
// it) and the affected batch is dropped. Misuse, like writing before Start or
// disposing twice, is tolerated silently.
package scrivener
