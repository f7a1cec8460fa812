package analysis

import (
	"testing"
	"time"

	"github.com/kotonoha-lab/talklog/internal/parse"
)

func TestLatency_CrossSenderReply(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 14:30", "佐藤", "こんにちは！"),
		msgRec("2024/01/15 14:31", "田中", "こんにちは！"),
	})

	result := Latency(conv, LatencyOptions{})
	tanaka := result.BySender["田中"]
	if tanaka == nil {
		t.Fatal("expected latency stats for 田中")
	}
	if tanaka.Samples != 1 {
		t.Errorf("samples = %d, want 1", tanaka.Samples)
	}
	if tanaka.MeanSeconds != 60 {
		t.Errorf("mean = %f seconds, want 60", tanaka.MeanSeconds)
	}
	if _, ok := result.BySender["佐藤"]; ok {
		t.Error("佐藤 opened the conversation and should have no sample")
	}
}

func TestLatency_SameSenderBurstProducesNoSample(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 14:30", "佐藤", "一件目"),
		msgRec("2024/01/15 14:31", "佐藤", "二件目"),
		msgRec("2024/01/15 14:32", "佐藤", "三件目"),
	})

	result := Latency(conv, LatencyOptions{})
	if len(result.BySender) != 0 {
		t.Errorf("same-sender run must produce no samples, got %+v", result.BySender)
	}
	if result.BurstCadenceSeconds["佐藤"] != 60 {
		t.Errorf("burst cadence = %f, want 60", result.BurstCadenceSeconds["佐藤"])
	}
}

func TestLatency_SessionGapExcludedButCounted(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 08:00", "佐藤", "おはよう"),
		msgRec("2024/01/15 21:00", "田中", "(13時間後) こんばんは"),
		msgRec("2024/01/15 21:01", "佐藤", "こんばんは"),
	})

	result := Latency(conv, LatencyOptions{SessionGap: time.Hour})
	if result.GapEvents != 1 {
		t.Errorf("gap events = %d, want 1", result.GapEvents)
	}
	if _, ok := result.BySender["田中"]; ok {
		t.Error("gap delta must not become a latency sample")
	}
	sato := result.BySender["佐藤"]
	if sato == nil || sato.Samples != 1 {
		t.Fatalf("expected one sample for 佐藤, got %+v", sato)
	}
}

func TestLatency_MedianAndBuckets(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 10:00", "佐藤", "a"),
		msgRec("2024/01/15 10:01", "田中", "b"), // 1m
		msgRec("2024/01/15 10:02", "佐藤", "c"),
		msgRec("2024/01/15 10:12", "田中", "d"), // 10m
		msgRec("2024/01/15 10:13", "佐藤", "e"),
		msgRec("2024/01/15 10:33", "田中", "f"), // 20m
	})

	result := Latency(conv, LatencyOptions{})
	tanaka := result.BySender["田中"]
	if tanaka == nil || tanaka.Samples != 3 {
		t.Fatalf("expected 3 samples for 田中, got %+v", tanaka)
	}
	if tanaka.MedianSeconds != 600 {
		t.Errorf("median = %f, want 600", tanaka.MedianSeconds)
	}
	// Buckets: <=1m, <=5m, <=15m, <=30m, <=1h, >1h
	want := []int{1, 0, 1, 1, 0, 0}
	for i, n := range want {
		if tanaka.Buckets[i] != n {
			t.Errorf("bucket[%d] = %d, want %d (all: %v)", i, tanaka.Buckets[i], n, tanaka.Buckets)
		}
	}
}

func TestLatency_SystemMessagesIgnored(t *testing.T) {
	conv := buildConv(t, []parse.Record{
		msgRec("2024/01/15 14:30", "佐藤", "こんにちは"),
		{Timestamp: "2024/01/15 14:30", Text: "通話が開始されました", System: true},
		msgRec("2024/01/15 14:31", "田中", "こんにちは"),
	})

	result := Latency(conv, LatencyOptions{})
	tanaka := result.BySender["田中"]
	if tanaka == nil || tanaka.Samples != 1 || tanaka.MeanSeconds != 60 {
		t.Fatalf("system message skewed latency: %+v", tanaka)
	}
}

func TestLatency_EmptyAndSingle(t *testing.T) {
	if r := Latency(buildConv(t, nil), LatencyOptions{}); len(r.BySender) != 0 {
		t.Errorf("empty conversation produced samples: %+v", r.BySender)
	}
	single := buildConv(t, []parse.Record{msgRec("2024/01/15 14:30", "佐藤", "ひとりごと")})
	if r := Latency(single, LatencyOptions{}); len(r.BySender) != 0 {
		t.Errorf("single message produced samples: %+v", r.BySender)
	}
}
