package sentiment

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestClassify_EmptyShortCircuits(t *testing.T) {
	// Point at a nonexistent lexicon: if the model were touched the
	// call would fail, so success proves the short-circuit.
	c := New("/nonexistent/lexicon.tsv")

	for _, text := range []string{"", "   ", "\t\n"} {
		res, err := c.Classify(text)
		if err != nil {
			t.Fatalf("Classify(%q) err: %v", text, err)
		}
		if res.Label != Neutral || res.Confidence != 1.0 {
			t.Errorf("Classify(%q) = %+v, want (neutral, 1.0)", text, res)
		}
	}
}

func TestClassify_Positive(t *testing.T) {
	c := New("")
	res, err := c.Classify("今日は楽しかった！ありがとう")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Label != Positive {
		t.Errorf("label = %s, want positive", res.Label)
	}
	if res.Confidence < 0.5 || res.Confidence > 1.0 {
		t.Errorf("confidence out of range: %f", res.Confidence)
	}
}

func TestClassify_Negative(t *testing.T) {
	c := New("")
	res, err := c.Classify("最悪だった、疲れたしイライラする")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Label != Negative {
		t.Errorf("label = %s, want negative", res.Label)
	}
}

func TestClassify_NoHitsIsNeutral(t *testing.T) {
	c := New("")
	res, err := c.Classify("カレンダーを見た")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Label != Neutral {
		t.Errorf("label = %s, want neutral", res.Label)
	}
}

func TestClassify_MissingLexiconIsModelUnavailable(t *testing.T) {
	c := New("/nonexistent/lexicon.tsv")
	if _, err := c.Classify("こんにちは"); !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestClassify_LexiconFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.tsv")
	content := "# polarity lexicon\nふわふわ\tp\nぎすぎす\tn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(path)
	res, err := c.Classify("ふわふわな気分")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Label != Positive {
		t.Errorf("label = %s, want positive", res.Label)
	}
}

func TestClassify_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	c := New("")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Classify("楽しい"); err != nil {
				t.Errorf("concurrent Classify err: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestScore_ExclamationBoost(t *testing.T) {
	m := newLexiconModel(positiveWords, negativeWords)
	plain := m.score("嬉しい")
	boosted := m.score("嬉しい！！")
	if boosted.Label != Positive {
		t.Fatalf("boosted label = %s", boosted.Label)
	}
	if boosted.Confidence < plain.Confidence {
		t.Errorf("exclamations lowered confidence: %f < %f", boosted.Confidence, plain.Confidence)
	}
}
