package analysis

import (
	"testing"

	"github.com/kotonoha-lab/talklog/internal/conversation"
	"github.com/kotonoha-lab/talklog/internal/parse"
)

func buildConv(t *testing.T, records []parse.Record) *conversation.Conversation {
	t.Helper()
	return conversation.Build(records, parse.Diagnostics{})
}

func msgRec(ts, sender, text string) parse.Record {
	return parse.Record{Timestamp: ts, Sender: sender, Text: text}
}

func TestFrequency_CatRanksFirst(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "猫が好き"),
		msgRec("2024/01/15 10:01", "田中", "猫が嫌い"),
		msgRec("2024/01/15 10:02", "佐藤", "猫が好き"),
	})

	result := Frequency(conv, FrequencyOptions{
		MinTokenLength: 1,
		Stopwords:      map[string]struct{}{},
	})
	if len(result.Entries) == 0 {
		t.Fatal("expected entries")
	}
	if result.Entries[0].Token != "猫" || result.Entries[0].Count != 3 {
		t.Errorf("top entry = %+v, want 猫 x3", result.Entries[0])
	}
}

func TestFrequency_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "公園と野原"),
		msgRec("2024/01/15 10:01", "田中", "公園と野原"),
	})

	result := Frequency(conv, FrequencyOptions{MinTokenLength: 2, Stopwords: map[string]struct{}{}})
	if len(result.Entries) < 2 {
		t.Fatalf("expected at least 2 entries, got %+v", result.Entries)
	}
	if result.Entries[0].Token != "公園" || result.Entries[1].Token != "野原" {
		t.Errorf("tie order = %q, %q; want 公園 then 野原",
			result.Entries[0].Token, result.Entries[1].Token)
	}
}

func TestFrequency_MinLengthFiltersSingleRunes(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "猫が好き"),
	})

	result := Frequency(conv, FrequencyOptions{MinTokenLength: 2, Stopwords: map[string]struct{}{}})
	for _, e := range result.Entries {
		if len([]rune(e.Token)) < 2 {
			t.Errorf("single-rune token leaked through min length: %q", e.Token)
		}
	}
}

func TestFrequency_StopwordsExcluded(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "猫が好き"),
	})

	result := Frequency(conv, FrequencyOptions{
		MinTokenLength: 1,
		Stopwords:      map[string]struct{}{"猫": {}},
	})
	for _, e := range result.Entries {
		if e.Token == "猫" {
			t.Errorf("stopword 猫 ranked: %+v", result.Entries)
		}
	}
}

func TestFrequency_SenderFilter(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "犬と散歩"),
		msgRec("2024/01/15 10:01", "田中", "映画を観た"),
	})

	result := Frequency(conv, FrequencyOptions{MinTokenLength: 1, Sender: "田中", Stopwords: map[string]struct{}{}})
	for _, e := range result.Entries {
		if e.Token == "犬" {
			t.Errorf("other sender's token ranked: %+v", result.Entries)
		}
	}
}

func TestFrequency_TopLimit(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "春の桜と夏の海と秋の紅葉"),
	})

	result := Frequency(conv, FrequencyOptions{MinTokenLength: 1, Top: 2, Stopwords: map[string]struct{}{}})
	if len(result.Entries) > 2 {
		t.Errorf("top limit ignored: %d entries", len(result.Entries))
	}
}

func TestFrequency_EmptyConversation(t *testing.T) {
	result := Frequency(buildConv(t, nil), FrequencyOptions{})
	if len(result.Entries) != 0 || result.TotalTokens != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
