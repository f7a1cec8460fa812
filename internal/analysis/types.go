// Package analysis computes derived metrics over an immutable
// conversation snapshot. Analyzers have no data dependency on each
// other and never mutate the conversation; Run fans them out
// concurrently.
package analysis

import (
	"time"

	"github.com/kotonoha-lab/talklog/internal/sentiment"
)

// TokenCount is one ranked frequency entry.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// FrequencyResult is the ranked token table for a conversation.
type FrequencyResult struct {
	Entries     []TokenCount `json:"entries"`
	TotalTokens int          `json:"total_tokens"`
}

// LatencyBucketBounds are the upper bounds of the reply-latency
// distribution buckets. Bucket i counts samples <= bound i; the final
// bucket counts everything above the last bound.
var LatencyBucketBounds = []time.Duration{
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
}

// SenderLatency summarises reply latency attributed to one sender.
type SenderLatency struct {
	Samples       int     `json:"samples"`
	MeanSeconds   float64 `json:"mean_seconds"`
	MedianSeconds float64 `json:"median_seconds"`
	Buckets       []int   `json:"buckets"`
}

// LatencyResult is the reply-latency analysis output.
type LatencyResult struct {
	BySender map[string]*SenderLatency `json:"by_sender"`
	// GapEvents counts sender-change deltas above the session gap;
	// they are conversation breaks, not reply delays.
	GapEvents int `json:"gap_events"`
	// BurstCadenceSeconds is the mean interval between consecutive
	// same-sender messages inside the burst window.
	BurstCadenceSeconds map[string]float64 `json:"burst_cadence_seconds"`
}

// LengthStats summarises message lengths (in runes) for one sender.
type LengthStats struct {
	Messages    int     `json:"messages"`
	TotalChars  int     `json:"total_chars"`
	MeanChars   float64 `json:"mean_chars"`
	MedianChars float64 `json:"median_chars"`
	MaxChars    int     `json:"max_chars"`
}

// EmojiStats summarises emoji usage for one sender.
type EmojiStats struct {
	Messages int `json:"messages"` // emoji-bearing messages
	Total    int `json:"total"`    // total emoji occurrences
	// Rate is emoji-bearing messages / all messages for the sender.
	Rate float64 `json:"rate"`
}

// StatsResult is the aggregate statistics output.
type StatsResult struct {
	Hourly      [24]int                 `json:"hourly"`
	Length      map[string]*LengthStats `json:"length_by_sender"`
	LengthBands map[string]int          `json:"length_bands"`
	Emoji       map[string]*EmojiStats  `json:"emoji_by_sender"`
	TopEmoji    []TokenCount            `json:"top_emoji"`
	Stickers    map[string]int          `json:"stickers_by_sender"`
}

// MessageSentiment is the classification for one message, keyed by
// its position in the conversation.
type MessageSentiment struct {
	Index      int             `json:"index"`
	Label      sentiment.Label `json:"label"`
	Confidence float64         `json:"confidence"`
}

// SentimentResult covers the whole conversation. When the model
// cannot be loaded, Available is false and Reason says why; the other
// analyzers are unaffected.
type SentimentResult struct {
	Available bool                    `json:"available"`
	Reason    string                  `json:"reason,omitempty"`
	Messages  []MessageSentiment      `json:"messages,omitempty"`
	Totals    map[sentiment.Label]int `json:"totals,omitempty"`
}

// Report bundles all analyzer outputs for one conversation.
type Report struct {
	Frequency FrequencyResult `json:"frequency"`
	Latency   LatencyResult   `json:"latency"`
	Stats     StatsResult     `json:"stats"`
	Sentiment SentimentResult `json:"sentiment"`
}
