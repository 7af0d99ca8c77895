package scrivener

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Default values applied wherever the corresponding configuration field is
// missing or empty.
const (
	DefaultFolderPath    = "Logs"
	DefaultFilePrefix    = "log_"
	DefaultMaxFileSizeMB = 100
)

// A Config is the settings record consumed by [FromConfig] and [Replace].
// The zero value is usable; empty fields fall back to the defaults above.
type Config struct {
	// LogFolderPath is the directory log files are written into.
	LogFolderPath string `yaml:"log_folder_path"`
	// LogFileName is the prefix of generated file names.
	LogFileName string `yaml:"log_file_name"`
	// MaxFileSizeInMB is the rotation threshold in Mebibytes.
	MaxFileSizeInMB int `yaml:"max_file_size_in_mb"`
	// MaxFiles is the number of rotated files to keep, zero keeps all.
	MaxFiles int `yaml:"max_files,omitempty"`
	// CronSchedule optionally rotates on a cron schedule.
	CronSchedule string `yaml:"cron_schedule,omitempty"`
}

// DefaultConfig returns the configuration used when no settings file exists.
func DefaultConfig() Config {
	return Config{
		LogFolderPath:   DefaultFolderPath,
		LogFileName:     DefaultFilePrefix,
		MaxFileSizeInMB: DefaultMaxFileSizeMB,
	}
}

// Clone returns a normalized copy of the configuration. A Logger built from
// the clone is unaffected by later mutation of the original record.
func (c Config) Clone() Config {
	if c.LogFolderPath == "" {
		c.LogFolderPath = DefaultFolderPath
	}
	if c.LogFileName == "" {
		c.LogFileName = DefaultFilePrefix
	}
	if c.MaxFileSizeInMB <= 0 {
		c.MaxFileSizeInMB = DefaultMaxFileSizeMB
	}
	return c
}

// MaxBytes derives the rotation threshold in bytes from MaxFileSizeInMB.
func (c Config) MaxBytes() int {
	return c.Clone().MaxFileSizeInMB * Mb
}

// LoadConfig reads a YAML settings file into a Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file, caused by %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse settings file, caused by %w", err)
	}
	return cfg.Clone(), nil
}

// LoadConfigOrDefault reads the settings file at path, falling back to
// [DefaultConfig] with a diagnostic on stderr if the file is missing or
// corrupt. Settings problems are never raised to the caller.
func LoadConfigOrDefault(path string) Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrivener: using default settings, caused by %v\n", err)
		return DefaultConfig()
	}
	return cfg
}

// Save writes the configuration as YAML to path, creating parent directories
// as needed. Useful to materialize a settings file with defaults on first run.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c.Clone())
	if err != nil {
		return fmt.Errorf("failed to encode settings, caused by %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings folder, caused by %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file, caused by %w", err)
	}
	return nil
}
