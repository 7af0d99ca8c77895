package scrivener

// Sizes in bytes, for use with [WithMaxSize].
const (
	// Kibibytes
	Kb int = 1_024
	// Kilobytes
	KB int = 1_000
	// Mebibytes
	Mb int = 1_048_576
	// Megabytes
	MB int = 1_000_000
)
