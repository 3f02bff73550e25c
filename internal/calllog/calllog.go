// Package calllog archives completed calls for the dashboard's history and
// analytics screens. The live store stays volatile; only ended calls land
// here.
package calllog

import (
	"context"
	"time"
)

type Entry struct {
	ID           string    `json:"id"`
	CallerNumber string    `json:"callerNumber"`
	CallerName   string    `json:"callerName"`
	Intent       string    `json:"intent"`
	Sentiment    string    `json:"sentiment"`
	Duration     int       `json:"duration"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Outcome      string    `json:"outcome"`
}

// Filter narrows a listing; empty fields match everything.
type Filter struct {
	Sentiment string
	Intent    string
}

// Store abstracts the archive backend (Postgres or in-memory).
type Store interface {
	Record(ctx context.Context, e Entry) error
	List(ctx context.Context, f Filter) ([]Entry, error)
}
