package sentiment

import "strings"

// Sentiment labels assigned to transcripts.
const (
	Positive     = "Positive"
	Negative     = "Negative"
	Neutral      = "Neutral"
	NotAvailable = "N/A"
)

// Scorer computes a continuous polarity score for a piece of text.
// Positive scores indicate positive sentiment, negative scores negative
// sentiment, zero is neutral.
type Scorer interface {
	Polarity(text string) float64
}

// Classifier maps polarity scores to discrete sentiment labels.
type Classifier struct {
	scorer Scorer
}

// NewClassifier creates a new Classifier backed by the given scorer.
func NewClassifier(scorer Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify returns the label for the given text. Empty or whitespace-only
// text yields NotAvailable without invoking the scorer.
func (c *Classifier) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return NotAvailable
	}

	score := c.scorer.Polarity(text)
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}
