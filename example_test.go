package scrivener_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/scrivener-log/scrivener"
)

// This test demonstrates how to use [scrivener.Logger] from many goroutines.
func TestLog(t *testing.T) {
	logger, err := scrivener.New(
		// Specify the folder where the log files will be stored.
		scrivener.WithFolder(t.TempDir()),
		// Set the prefix of generated file names.
		scrivener.WithPrefix("demo_"),
		// Each log file holds a maximum of 50 Kibibytes before rotation.
		scrivener.WithMaxSize(50*scrivener.Kb),
		// Keep at most 4 rotated files.
		scrivener.WithMaxFiles(4),
	)
	if err != nil {
		t.Errorf("failed to create a new logger, caused by %s", err)
	}
	logger.Start()
	defer logger.Dispose()

	// Use the level helpers
	logger.Debug("this is a debug information")
	logger.Info("this is an additional information")
	logger.Warn("i am warning you")

	// You should see multiple log files being created
	var wg sync.WaitGroup

	n := 1000
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			logger.Debug(fmt.Sprintf("[%d] flooding the log with debug information...", id))
			logger.Info(fmt.Sprintf("[%d] flooding the log with additional information...", id))
			logger.Warn(fmt.Sprintf("[%d] flooding the log with warning...", id))
		}(i)
	}

	wg.Wait()
	// Block until everything above is on disk.
	logger.Stop()
}

const lorem = "Culpa sequi esse et et expedita aut qui quia. Error minus modi sunt beatae asperiores qui rem. Quia minima cumque laudantium sed rerum. Sunt delectus nesciunt dolor veniam soluta provident porro deserunt. Ullam illo beatae et quos unde maxime repellendus. Beatae itaque totam eum itaque velit et. Sit molestias dolore deserunt rerum amet. Molestiae rem provident minima autem nulla numquam. Illum voluptas ea nam suscipit. Corporis molestias necessitatibus dolore facilis. Nostrum cum nemo vero. Enim dolorem esse ad."

func BenchmarkLoggerWrite(b *testing.B) {
	logger, _ := scrivener.New(
		scrivener.WithFolder(b.TempDir()),
		scrivener.WithMaxSize(100*scrivener.KB),
		scrivener.WithMaxFiles(3),
	)
	logger.Start()
	defer logger.Dispose()

	b.Run(
		"Write to Logger",
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				logger.Info(lorem)
			}
		},
	)
}
