package conversation

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kotonoha-lab/talklog/internal/parse"
)

// timestampLayout accepts one- or two-digit month, day and hour, the
// way LINE exports actually write them.
const timestampLayout = "2006/1/2 15:04"

// Build validates and normalizes raw parser records into a
// Conversation. Records with impossible calendar values are dropped
// one at a time and counted; they never fail the whole build.
func Build(records []parse.Record, diags parse.Diagnostics) *Conversation {
	msgs := make([]Message, 0, len(records))
	for _, rec := range records {
		ts, err := time.Parse(timestampLayout, rec.Timestamp)
		if err != nil {
			slog.Warn("dropping record with invalid timestamp",
				"timestamp", rec.Timestamp, "line", rec.Line)
			diags.InvalidTimestamps++
			continue
		}
		msgs = append(msgs, Message{
			Time:   ts,
			Sender: rec.Sender,
			Text:   rec.Text,
			System: rec.System,
		})
	}

	// Well-formed exports are already monotonic; the stable re-sort
	// guards against out-of-order input while preserving original
	// line order on equal timestamps.
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Time.Before(msgs[j].Time)
	})
	for i := range msgs {
		msgs[i].Index = i
	}

	conv := &Conversation{
		ID:          uuid.New(),
		Messages:    msgs,
		Diagnostics: diags,
	}

	seen := make(map[string]struct{})
	for _, m := range msgs {
		if m.System {
			continue
		}
		if _, ok := seen[m.Sender]; !ok {
			seen[m.Sender] = struct{}{}
			conv.Senders = append(conv.Senders, m.Sender)
		}
	}

	if len(msgs) > 0 {
		conv.First = msgs[0].Time
		conv.Last = msgs[len(msgs)-1].Time
	}
	return conv
}
