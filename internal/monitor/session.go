package monitor

import "time"

type Status string

const (
	StatusOnHold       Status = "on_hold"
	StatusActive       Status = "active"
	StatusTransferring Status = "transferring"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOnHold, StatusActive, StatusTransferring:
		return true
	}
	return false
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// CallSession is the monitoring record of one in-progress call. It is a
// logical record only; no media is attached. Duration is advanced once per
// second by the Ticker and is a cached view of time elapsed since StartTime.
type CallSession struct {
	ID           string    `json:"id"`
	CallerNumber string    `json:"callerNumber"`
	CallerName   string    `json:"callerName"`
	Intent       string    `json:"intent"`
	Sentiment    Sentiment `json:"sentiment"`
	Duration     int       `json:"duration"`
	StartTime    time.Time `json:"startTime"`
	Status       Status    `json:"status"`

	// Operator flags, meaningful only while Status == StatusActive.
	Muted     bool `json:"muted"`
	Listening bool `json:"listening"`
}
