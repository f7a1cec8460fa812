// Package sentiment maps message text to a polarity label with a
// confidence score. The underlying model is a polarity lexicon: an
// expensive-to-reload, process-wide resource loaded lazily on first
// use and read-only afterwards.
package sentiment

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Label is the sentiment assigned to a message.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Result is a single classification outcome.
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ErrModelUnavailable means the model could not be loaded. Callers
// degrade to an explicit "sentiment unavailable" result for the run;
// the rest of the analysis pipeline is unaffected.
var ErrModelUnavailable = errors.New("sentiment model unavailable")

// Classifier classifies message text against a lazily loaded lexicon
// model. Concurrent first use triggers at most one load.
type Classifier struct {
	lexiconPath string

	once    sync.Once
	model   *lexiconModel
	loadErr error
}

// New returns a classifier. lexiconPath optionally overrides the
// embedded lexicon; the model is not loaded until the first Classify.
func New(lexiconPath string) *Classifier {
	return &Classifier{lexiconPath: lexiconPath}
}

// Classify returns the sentiment of text. Empty or whitespace-only
// text short-circuits to (neutral, 1.0) without touching the model.
func (c *Classifier) Classify(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{Label: Neutral, Confidence: 1.0}, nil
	}
	m, err := c.load()
	if err != nil {
		return Result{}, err
	}
	return m.score(text), nil
}

func (c *Classifier) load() (*lexiconModel, error) {
	c.once.Do(func() {
		if c.lexiconPath == "" {
			c.model = newLexiconModel(positiveWords, negativeWords)
			return
		}
		c.model, c.loadErr = loadLexiconFile(c.lexiconPath)
	})
	return c.model, c.loadErr
}

type lexiconModel struct {
	positive []string
	negative []string
}

func newLexiconModel(pos, neg []string) *lexiconModel {
	return &lexiconModel{positive: pos, negative: neg}
}

// loadLexiconFile reads "word<TAB>p|n" lines. Any read failure is the
// model-unavailable case.
func loadLexiconFile(path string) (*lexiconModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer f.Close()

	m := &lexiconModel{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, polarity, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		switch strings.TrimSpace(polarity) {
		case "p":
			m.positive = append(m.positive, word)
		case "n":
			m.negative = append(m.negative, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(m.positive) == 0 && len(m.negative) == 0 {
		return nil, fmt.Errorf("%w: lexicon %s has no entries", ErrModelUnavailable, path)
	}
	return m, nil
}

func (m *lexiconModel) score(text string) Result {
	normalized := strings.ToLower(text)

	pos, neg := 0, 0
	for _, w := range m.positive {
		pos += strings.Count(normalized, strings.ToLower(w))
	}
	for _, w := range m.negative {
		neg += strings.Count(normalized, strings.ToLower(w))
	}

	// Exclamation marks amplify whichever polarity is already ahead.
	bangs := strings.Count(text, "!") + strings.Count(text, "！")
	if pos > neg {
		pos += bangs * exclamationBoost
	} else if neg > pos {
		neg += bangs * exclamationBoost
	}

	if pos == neg {
		return Result{Label: Neutral, Confidence: 0.5}
	}

	total := float64(pos + neg)
	winner := float64(pos)
	label := Positive
	if neg > pos {
		winner = float64(neg)
		label = Negative
	}

	conf := winner / total
	if conf < 0.5 {
		conf = 0.5
	}
	return Result{Label: label, Confidence: conf}
}
