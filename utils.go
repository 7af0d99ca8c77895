package scrivener

import "time"

// Clock used for message timestamps and file names, a variable so tests can
// pin it.
var now = time.Now
