package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// DecodeUpload turns raw upload bytes into text. Valid UTF-8 passes
// through; anything else is retried as Shift_JIS, which is what older
// LINE desktop exports use.
func DecodeUpload(b []byte) (string, error) {
	text := strings.TrimPrefix(string(b), "\uFEFF")
	if utf8.ValidString(text) {
		return text, nil
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().String(text)
	if err != nil || !utf8.ValidString(decoded) {
		return "", fmt.Errorf("decode upload: %w", ErrUnrecognizedFormat)
	}
	return decoded, nil
}

// Parse detects the export format and converts the file into an
// ordered sequence of raw records. A single bad line never aborts the
// file; it is counted in the returned diagnostics and skipped.
func Parse(text string) ([]Record, Diagnostics, error) {
	format, err := Detect(text)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var records []Record
	diags := Diagnostics{Format: format}
	switch format {
	case FormatA:
		records = parseFormatA(lines, &diags)
	case FormatB:
		records = parseFormatB(lines, &diags)
	}
	return records, diags, nil
}

func parseFormatA(lines []string, diags *Diagnostics) []Record {
	var records []Record
	for n, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := messageLineA.FindStringSubmatch(line); m != nil {
			records = append(records, Record{
				Timestamp: m[1] + " " + m[2],
				Sender:    strings.TrimSpace(m[3]),
				Text:      strings.TrimSpace(m[4]),
				Line:      n + 1,
			})
			continue
		}

		// Bracketed timestamp without "Sender:" is a system event
		// (join, call, album). Kept, but flagged so analyzers skip it.
		if m := systemLineA.FindStringSubmatch(line); m != nil {
			records = append(records, Record{
				Timestamp: m[1] + " " + m[2],
				Text:      strings.TrimSpace(m[3]),
				Line:      n + 1,
				System:    true,
			})
			continue
		}

		appendContinuation(&records, line, diags)
	}
	return records
}

// parseFormatB is a two-state parser: no date context until the first
// YYYY/MM/DD(weekday) header, then the header date carries forward to
// every tab-separated time row until the next header.
func parseFormatB(lines []string, diags *Diagnostics) []Record {
	var records []Record
	currentDate := ""
	for n, raw := range lines {
		// Only carriage returns: trimming tabs would eat the field
		// separator of a row with an empty message body.
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := dateHeaderB.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			currentDate = m[1]
			continue
		}

		if m := messageLineB.FindStringSubmatch(line); m != nil {
			if currentDate == "" {
				// Time row before any date header: nothing to anchor
				// the timestamp to.
				diags.MalformedLines++
				continue
			}
			records = append(records, Record{
				Timestamp: currentDate + " " + m[1],
				Sender:    strings.TrimSpace(m[2]),
				Text:      strings.TrimSpace(m[3]),
				Line:      n + 1,
			})
			continue
		}

		appendContinuation(&records, strings.TrimSpace(line), diags)
	}
	return records
}

// appendContinuation folds a non-matching line into the previous
// record as an embedded newline, or counts it as malformed when there
// is no record to attach it to.
func appendContinuation(records *[]Record, line string, diags *Diagnostics) {
	if len(*records) == 0 {
		diags.MalformedLines++
		return
	}
	last := &(*records)[len(*records)-1]
	last.Text += "\n" + line
}
