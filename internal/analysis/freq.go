package analysis

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/kotonoha-lab/talklog/internal/conversation"
	"github.com/kotonoha-lab/talklog/internal/segment"
)

// defaultStopwords are tokens too generic to rank. Write-once at
// init, read-only afterwards.
var defaultStopwords = func() map[string]struct{} {
	words := []string{
		"の", "に", "は", "を", "が", "で", "と", "から", "まで", "より",
		"や", "か", "も", "など", "って", "です", "ます", "だ",
		"お", "ご", "さん", "ちゃん", "くん", "ね", "よ", "な", "わ",
		"あ", "い", "う", "え", "ん", "っ", "ー",
		"する", "いる", "ある", "なる", "れる", "てる", "こと", "そう", "これ", "それ",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// FrequencyOptions controls the frequency analysis. Zero values fall
// back to sensible defaults; a nil Stopwords uses the embedded set.
type FrequencyOptions struct {
	MinTokenLength int
	Top            int
	Sender         string
	From, To       time.Time
	Stopwords      map[string]struct{}
}

// Frequency tokenizes every non-system message, counts content
// tokens and returns them ranked descending by count. Ties keep
// first-occurrence order.
func Frequency(conv *conversation.Conversation, opts FrequencyOptions) FrequencyResult {
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = 2
	}
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = defaultStopwords
	}

	msgs := conv.Select(conversation.Filter{
		Sender:     opts.Sender,
		From:       opts.From,
		To:         opts.To,
		SkipSystem: true,
	})

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0
	total := 0
	for _, m := range msgs {
		for _, token := range segment.ContentWords(m.Text) {
			if utf8.RuneCountInString(token) < opts.MinTokenLength {
				continue
			}
			if _, stopped := stopwords[token]; stopped {
				continue
			}
			if _, ok := firstSeen[token]; !ok {
				firstSeen[token] = seq
				seq++
			}
			counts[token]++
			total++
		}
	}

	entries := make([]TokenCount, 0, len(counts))
	for token, count := range counts {
		entries = append(entries, TokenCount{Token: token, Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Token] < firstSeen[entries[j].Token]
	})

	if opts.Top > 0 && len(entries) > opts.Top {
		entries = entries[:opts.Top]
	}
	return FrequencyResult{Entries: entries, TotalTokens: total}
}
