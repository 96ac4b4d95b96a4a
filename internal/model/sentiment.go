package model

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	// SentimentUnknown is assigned to stored values outside the closed set.
	SentimentUnknown Sentiment = "unknown"
)

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// NormalizeSentiment maps a stored value onto the closed set, or
// SentimentUnknown when it is missing or unrecognized.
func NormalizeSentiment(raw string) Sentiment {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s
	}
	return SentimentUnknown
}

// SentimentCounts partitions a set of feedback rows by sentiment.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Unknown  int `json:"unknown"`
}

func (c *SentimentCounts) Add(s Sentiment) {
	switch s {
	case SentimentPositive:
		c.Positive++
	case SentimentNeutral:
		c.Neutral++
	case SentimentNegative:
		c.Negative++
	default:
		c.Unknown++
	}
}

func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative + c.Unknown
}
