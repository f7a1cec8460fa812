package analysis

import (
	"sort"
	"time"

	"github.com/kotonoha-lab/talklog/internal/conversation"
)

// DefaultSessionGap is the delta above which a sender change is
// treated as a conversation break instead of a reply. The original
// analysis discarded deltas over an hour; the threshold stays
// configurable.
const DefaultSessionGap = time.Hour

// DefaultBurstWindow bounds the interval between consecutive
// same-sender messages that still counts as one burst.
const DefaultBurstWindow = 30 * time.Minute

// LatencyOptions controls the reply-latency analysis. Zero values
// take the documented defaults.
type LatencyOptions struct {
	SessionGap  time.Duration
	BurstWindow time.Duration
}

// Latency walks the ordered message sequence computing inter-message
// deltas. A latency sample is attributed to the responder only when
// the sender changes; consecutive same-sender messages are one burst
// and produce no sample between them.
func Latency(conv *conversation.Conversation, opts LatencyOptions) LatencyResult {
	if opts.SessionGap <= 0 {
		opts.SessionGap = DefaultSessionGap
	}
	if opts.BurstWindow <= 0 {
		opts.BurstWindow = DefaultBurstWindow
	}

	result := LatencyResult{
		BySender:            make(map[string]*SenderLatency),
		BurstCadenceSeconds: make(map[string]float64),
	}

	msgs := conv.Select(conversation.Filter{SkipSystem: true})
	if len(msgs) < 2 {
		return result
	}

	samples := make(map[string][]time.Duration)
	bursts := make(map[string][]time.Duration)
	for i := 1; i < len(msgs); i++ {
		prev, cur := msgs[i-1], msgs[i]
		delta := cur.Time.Sub(prev.Time)

		if cur.Sender == prev.Sender {
			if delta <= opts.BurstWindow {
				bursts[cur.Sender] = append(bursts[cur.Sender], delta)
			}
			continue
		}

		if delta > opts.SessionGap {
			result.GapEvents++
			continue
		}
		samples[cur.Sender] = append(samples[cur.Sender], delta)
	}

	for sender, deltas := range samples {
		sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })

		sum := time.Duration(0)
		buckets := make([]int, len(LatencyBucketBounds)+1)
		for _, d := range deltas {
			sum += d
			buckets[bucketIndex(d)]++
		}

		result.BySender[sender] = &SenderLatency{
			Samples:       len(deltas),
			MeanSeconds:   sum.Seconds() / float64(len(deltas)),
			MedianSeconds: median(deltas),
			Buckets:       buckets,
		}
	}

	for sender, deltas := range bursts {
		sum := time.Duration(0)
		for _, d := range deltas {
			sum += d
		}
		result.BurstCadenceSeconds[sender] = sum.Seconds() / float64(len(deltas))
	}

	return result
}

func bucketIndex(d time.Duration) int {
	for i, bound := range LatencyBucketBounds {
		if d <= bound {
			return i
		}
	}
	return len(LatencyBucketBounds)
}

func median(sorted []time.Duration) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2].Seconds()
	}
	return (sorted[n/2-1] + sorted[n/2]).Seconds() / 2
}
