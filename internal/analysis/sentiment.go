package analysis

import (
	"log/slog"

	"github.com/kotonoha-lab/talklog/internal/conversation"
	"github.com/kotonoha-lab/talklog/internal/sentiment"
)

// Sentiment classifies every non-system message. A model-load
// failure disables sentiment for the whole run with an explicit
// unavailable result instead of failing the pipeline.
func Sentiment(conv *conversation.Conversation, clf *sentiment.Classifier) SentimentResult {
	result := SentimentResult{
		Available: true,
		Totals:    make(map[sentiment.Label]int),
	}

	for _, m := range conv.Messages {
		if m.System {
			continue
		}
		res, err := clf.Classify(m.Text)
		if err != nil {
			slog.Warn("sentiment disabled for this run", "error", err)
			return SentimentResult{Available: false, Reason: err.Error()}
		}
		result.Messages = append(result.Messages, MessageSentiment{
			Index:      m.Index,
			Label:      res.Label,
			Confidence: res.Confidence,
		})
		result.Totals[res.Label]++
	}
	return result
}
