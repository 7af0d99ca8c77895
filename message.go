package scrivener

import (
	"strings"
	"time"
)

// Labels used by the level helpers. [Logger.WriteLabeled] accepts any label,
// including an empty one.
const (
	LabelDebug = "DEBUG"
	LabelInfo  = "INFO"
	LabelWarn  = "WARN"
	LabelError = "ERROR"
	LabelFatal = "FATAL"
)

// Layout of the timestamp embedded in every log line.
const timestampLayout = "02 Jan 2006 15:04:05.000"

// A Message is a single log entry on its way to disk.
// It is created inside [Logger.Write] and handed to every subscribed [Hook]
// before being queued. Hooks may change Label and Text, or call [Message.Cancel]
// to discard the entry. After the hooks return, the message belongs to the
// worker and must not be touched again.
type Message struct {
	// Timestamp is the capture time, set when the message is created.
	Timestamp time.Time
	// Label is a short severity or category tag, may be empty.
	Label string
	// Text is the message body. Messages with empty text are dropped
	// silently when the worker formats them.
	Text string

	canceled bool
}

// Cancel marks the message as discarded. A canceled message never reaches the
// queue. Only meaningful when called from a [Hook].
func (m *Message) Cancel() {
	m.canceled = true
}

// Canceled reports whether a hook canceled this message.
func (m *Message) Canceled() bool {
	return m.canceled
}

// line renders the message as a single log line, or "" if the message has no
// text and should produce no output.
func (m *Message) line() string {
	if m.Text == "" {
		return ""
	}
	var b strings.Builder
	if m.Label != "" {
		b.WriteString(m.Label)
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(m.Timestamp.Format(timestampLayout))
	b.WriteString("] ")
	b.WriteString(m.Text)
	b.WriteByte('\n')
	return b.String()
}
