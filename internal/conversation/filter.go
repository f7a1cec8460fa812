package conversation

import (
	"strings"
	"time"
)

// Filter selects a message subset without mutating the conversation.
// Zero values mean "no constraint".
type Filter struct {
	Sender  string
	Keyword string
	From    time.Time
	To      time.Time
	MinLen  int
	MaxLen  int
	// SkipSystem drops system events from the result.
	SkipSystem bool
}

// Select returns the messages matching the filter, in order.
func (c *Conversation) Select(f Filter) []Message {
	keyword := strings.ToLower(f.Keyword)
	var out []Message
	for _, m := range c.Messages {
		if f.SkipSystem && m.System {
			continue
		}
		if f.Sender != "" && m.Sender != f.Sender {
			continue
		}
		if !f.From.IsZero() && m.Time.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && m.Time.After(f.To) {
			continue
		}
		length := len([]rune(m.Text))
		if f.MinLen > 0 && length < f.MinLen {
			continue
		}
		if f.MaxLen > 0 && length > f.MaxLen {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(m.Text), keyword) {
			continue
		}
		out = append(out, m)
	}
	return out
}
