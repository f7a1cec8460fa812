package parse

import (
	"regexp"
	"strings"
)

// Line patterns follow the LINE export layouts byte for byte.
// Months, days and hours may be one or two digits.
var (
	messageLineA = regexp.MustCompile(`^\[(\d{4}/\d{1,2}/\d{1,2})\s+(\d{1,2}:\d{2})\]\s+([^:]+):\s*(.*)$`)
	systemLineA  = regexp.MustCompile(`^\[(\d{4}/\d{1,2}/\d{1,2})\s+(\d{1,2}:\d{2})\]\s+(.+)$`)
	dateHeaderB  = regexp.MustCompile(`^(\d{4}/\d{1,2}/\d{1,2})\([月火水木金土日]\)$`)
	messageLineB = regexp.MustCompile(`^(\d{1,2}:\d{2})\t([^\t]+)\t(.*)$`)
)

// detectSample is how many non-blank lines Detect inspects.
const detectSample = 10

// Detect classifies raw talk-log text as one of the supported
// formats. The majority vote runs over header-shaped lines only, so
// continuation lines of multiline messages carry no weight. Format A
// wins when a majority of those carry a bracketed timestamp; Format B
// requires at least one date header followed by a tab-separated time
// row. Any bracketed line with no Format B evidence still counts as
// Format A.
func Detect(text string) (Format, error) {
	var sample []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == detectSample {
			break
		}
	}
	if len(sample) == 0 {
		return FormatUnknown, ErrUnrecognizedFormat
	}

	bracketed, shaped := 0, 0
	for _, line := range sample {
		switch {
		case systemLineA.MatchString(line):
			bracketed++
			shaped++
		case dateHeaderB.MatchString(line), messageLineB.MatchString(line):
			shaped++
		}
	}
	if bracketed*2 > shaped {
		return FormatA, nil
	}

	sawHeader := false
	for _, line := range sample {
		if dateHeaderB.MatchString(line) {
			sawHeader = true
			continue
		}
		if sawHeader && messageLineB.MatchString(line) {
			return FormatB, nil
		}
	}

	if bracketed > 0 {
		return FormatA, nil
	}
	return FormatUnknown, ErrUnrecognizedFormat
}
