// Package conversation owns the canonical ordered conversation built
// from raw parser records. A Conversation is immutable after Build;
// analyzers only ever receive read-only views of it.
package conversation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kotonoha-lab/talklog/internal/parse"
)

// Message is the canonical unit of conversation.
type Message struct {
	Index  int       `json:"index"`
	Time   time.Time `json:"time"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	System bool      `json:"system,omitempty"`
}

// Conversation is an ordered message sequence plus derived metadata.
// Built once per upload and replaced wholesale by the next one.
type Conversation struct {
	ID          uuid.UUID         `json:"id"`
	Messages    []Message         `json:"messages"`
	Senders     []string          `json:"senders"`
	First       time.Time         `json:"first"`
	Last        time.Time         `json:"last"`
	Diagnostics parse.Diagnostics `json:"diagnostics"`
}

// Empty reports whether no valid messages survived the build.
// An empty conversation is a valid result, not an error.
func (c *Conversation) Empty() bool {
	return len(c.Messages) == 0
}

// FormatA renders the message in the bracketed inline-timestamp
// export layout.
func (m Message) FormatA() string {
	ts := m.Time.Format("2006/01/02 15:04")
	if m.System {
		return fmt.Sprintf("[%s] %s", ts, m.Text)
	}
	return fmt.Sprintf("[%s] %s: %s", ts, m.Sender, m.Text)
}

// ExportFormatA renders the conversation back to the literal Format A
// line layout, one message per line (embedded newlines carry over).
// Date and time fields are normalized to two digits, so single-digit
// source fields do not round-trip byte for byte.
func (c *Conversation) ExportFormatA() string {
	var sb strings.Builder
	for _, m := range c.Messages {
		sb.WriteString(m.FormatA())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DayCount holds per-calendar-day message totals.
type DayCount struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
	Senders  int    `json:"senders"`
}

// DailyCounts returns message and distinct-sender counts per day,
// in chronological order. System messages are excluded from the
// sender count but included in the message total.
func (c *Conversation) DailyCounts() []DayCount {
	type day struct {
		messages int
		senders  map[string]struct{}
	}
	byDate := make(map[string]*day)
	for _, m := range c.Messages {
		key := m.Time.Format("2006/01/02")
		d := byDate[key]
		if d == nil {
			d = &day{senders: make(map[string]struct{})}
			byDate[key] = d
		}
		d.messages++
		if !m.System {
			d.senders[m.Sender] = struct{}{}
		}
	}

	dates := make([]string, 0, len(byDate))
	for k := range byDate {
		dates = append(dates, k)
	}
	sort.Strings(dates)

	counts := make([]DayCount, 0, len(dates))
	for _, date := range dates {
		d := byDate[date]
		counts = append(counts, DayCount{Date: date, Messages: d.messages, Senders: len(d.senders)})
	}
	return counts
}
