// Command scrivener exercises the logging pipeline end to end: it builds a
// logger from flags or a settings file, floods it from several goroutines,
// and stops cleanly so every message lands on disk.
package main

import (
	"fmt"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/scrivener-log/scrivener"
)

type cli struct {
	Folder    string `help:"Folder to write log files into." default:"Logs"`
	Prefix    string `help:"Prefix of generated file names." default:"log_"`
	MaxSizeMB int    `help:"Rotate files after this many Mebibytes." default:"100"`
	MaxFiles  int    `help:"Rotated files to keep, 0 keeps all." default:"0"`
	Settings  string `help:"Read settings from this YAML file instead of flags." type:"path"`
	Writers   int    `help:"Concurrent writer goroutines." default:"4"`
	Count     int    `help:"Messages per writer." default:"100"`
}

func main() {
	var args cli
	ktx := kong.Parse(&args,
		kong.Name("scrivener"),
		kong.Description("Demonstrate asynchronous logging to rotating files."),
	)
	ktx.FatalIfErrorf(run(args))
}

func run(args cli) error {
	cfg := scrivener.Config{
		LogFolderPath:   args.Folder,
		LogFileName:     args.Prefix,
		MaxFileSizeInMB: args.MaxSizeMB,
		MaxFiles:        args.MaxFiles,
	}
	if args.Settings != "" {
		cfg = scrivener.LoadConfigOrDefault(args.Settings)
	}

	logger, err := scrivener.New(scrivener.FromConfig(cfg))
	if err != nil {
		return err
	}
	logger.Start()
	defer logger.Dispose()

	var wg sync.WaitGroup
	for w := 0; w < args.Writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < args.Count; i++ {
				switch i % 4 {
				case 0:
					logger.Debug(fmt.Sprintf("writer %d message %d", id, i))
				case 1:
					logger.Info(fmt.Sprintf("writer %d message %d", id, i))
				case 2:
					logger.Warn(fmt.Sprintf("writer %d message %d", id, i))
				default:
					logger.Error(fmt.Sprintf("writer %d message %d", id, i))
				}
			}
		}(w)
	}
	wg.Wait()

	// Drain before reporting so the files are complete.
	logger.Stop()
	fmt.Printf("wrote %d messages to %s\n", args.Writers*args.Count, cfg.Clone().LogFolderPath)
	return nil
}
