package parse

import "errors"

// Format identifies one of the supported LINE export layouts.
type Format int

const (
	FormatUnknown Format = iota
	// FormatA is the bracketed inline-timestamp layout:
	// [YYYY/MM/DD HH:MM] Sender: Message
	FormatA
	// FormatB is the date-header layout: a YYYY/MM/DD(weekday) header
	// line followed by HH:MM<TAB>Sender<TAB>Message rows.
	FormatB
)

func (f Format) String() string {
	switch f {
	case FormatA:
		return "inline-timestamp"
	case FormatB:
		return "date-header"
	default:
		return "unknown"
	}
}

// ErrUnrecognizedFormat means the file matched neither export layout.
// It is fatal for the whole file: no partial result is produced.
var ErrUnrecognizedFormat = errors.New("unrecognized talk-log format")

// Record is one raw message tuple emitted by the line parser.
// Timestamp is the literal "YYYY/MM/DD HH:MM" string; FormatB rows
// get the carried header date prepended before they are emitted.
type Record struct {
	Timestamp string
	Sender    string
	Text      string
	Line      int
	// System marks bracketed lines without a "Sender:" prefix
	// (joins, calls, album events).
	System bool
}

// Diagnostics counts record-level failures that were skipped rather
// than aborting the file. Surfaced to the caller, never swallowed.
type Diagnostics struct {
	Format            Format `json:"-"`
	MalformedLines    int    `json:"malformed_lines"`
	InvalidTimestamps int    `json:"invalid_timestamps"`
}
