package analysis

import (
	"sync"

	"github.com/kotonoha-lab/talklog/internal/conversation"
	"github.com/kotonoha-lab/talklog/internal/sentiment"
)

// Run executes all analyzers over the same immutable conversation
// snapshot. They share no mutable state, so they run concurrently;
// the sentiment classifier's one-time model load is guarded inside
// the classifier itself.
func Run(conv *conversation.Conversation, clf *sentiment.Classifier, freq FrequencyOptions, lat LatencyOptions) Report {
	var report Report
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		report.Frequency = Frequency(conv, freq)
	}()
	go func() {
		defer wg.Done()
		report.Latency = Latency(conv, lat)
	}()
	go func() {
		defer wg.Done()
		report.Stats = Stats(conv)
	}()
	go func() {
		defer wg.Done()
		report.Sentiment = Sentiment(conv, clf)
	}()

	wg.Wait()
	return report
}
