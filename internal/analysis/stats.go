package analysis

import (
	"sort"
	"strings"

	"github.com/forPelevin/gomoji"

	"github.com/kotonoha-lab/talklog/internal/conversation"
)

const stickerPlaceholder = "[スタンプ]"

const topEmojiLimit = 10

// Stats computes the time-of-day histogram, per-sender message-length
// distribution and per-sender emoji usage. Pure aggregation; the
// empty conversation yields zeroed maps.
func Stats(conv *conversation.Conversation) StatsResult {
	result := StatsResult{
		Length:      make(map[string]*LengthStats),
		LengthBands: map[string]int{"1-10": 0, "11-50": 0, "51-100": 0, "100+": 0},
		Emoji:       make(map[string]*EmojiStats),
		Stickers:    make(map[string]int),
	}

	msgs := conv.Select(conversation.Filter{SkipSystem: true})
	lengths := make(map[string][]int)
	emojiCounts := make(map[string]int)
	for _, m := range msgs {
		result.Hourly[m.Time.Hour()]++

		n := len([]rune(m.Text))
		lengths[m.Sender] = append(lengths[m.Sender], n)
		result.LengthBands[lengthBand(n)]++

		es := result.Emoji[m.Sender]
		if es == nil {
			es = &EmojiStats{}
			result.Emoji[m.Sender] = es
		}
		if found := gomoji.FindAll(m.Text); len(found) > 0 {
			es.Messages++
			// FindAll may report duplicates; count occurrences per
			// distinct character so repeats are tallied exactly once.
			distinct := make(map[string]struct{}, len(found))
			for _, e := range found {
				distinct[e.Character] = struct{}{}
			}
			for ch := range distinct {
				occurrences := strings.Count(m.Text, ch)
				es.Total += occurrences
				emojiCounts[ch] += occurrences
			}
		}

		if strings.Contains(m.Text, stickerPlaceholder) {
			result.Stickers[m.Sender]++
		}
	}

	for sender, ls := range lengths {
		sort.Ints(ls)
		total := 0
		for _, n := range ls {
			total += n
		}
		stats := &LengthStats{
			Messages:   len(ls),
			TotalChars: total,
			MeanChars:  float64(total) / float64(len(ls)),
			MaxChars:   ls[len(ls)-1],
		}
		if len(ls)%2 == 1 {
			stats.MedianChars = float64(ls[len(ls)/2])
		} else {
			stats.MedianChars = float64(ls[len(ls)/2-1]+ls[len(ls)/2]) / 2
		}
		result.Length[sender] = stats

		es := result.Emoji[sender]
		es.Rate = float64(es.Messages) / float64(len(ls))
	}

	result.TopEmoji = topEmoji(emojiCounts, topEmojiLimit)
	return result
}

func lengthBand(n int) string {
	switch {
	case n <= 10:
		return "1-10"
	case n <= 50:
		return "11-50"
	case n <= 100:
		return "51-100"
	default:
		return "100+"
	}
}

func topEmoji(counts map[string]int, limit int) []TokenCount {
	if len(counts) == 0 {
		return nil
	}
	entries := make([]TokenCount, 0, len(counts))
	for e, c := range counts {
		entries = append(entries, TokenCount{Token: e, Count: c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
