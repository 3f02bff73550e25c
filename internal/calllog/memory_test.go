package calllog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"callwatch/internal/calllog"
)

func entry(id, sentiment, intent string) calllog.Entry {
	return calllog.Entry{
		ID:           id,
		CallerNumber: "+1 555-000-0000",
		CallerName:   "Rahul Sharma",
		Intent:       intent,
		Sentiment:    sentiment,
		Duration:     120,
		StartTime:    time.Now().Add(-2 * time.Minute),
		EndTime:      time.Now(),
		Outcome:      "completed",
	}
}

func TestMemory_NewestFirst(t *testing.T) {
	m := calllog.NewMemory(10)
	ctx := context.Background()

	m.Record(ctx, entry("1", "neutral", "Unknown"))
	m.Record(ctx, entry("2", "neutral", "Unknown"))

	got, err := m.List(ctx, calllog.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("listing order = %v, want newest first", ids(got))
	}
}

func TestMemory_CapTrimsOldest(t *testing.T) {
	m := calllog.NewMemory(3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		m.Record(ctx, entry(fmt.Sprint(i), "neutral", "Unknown"))
	}

	got, _ := m.List(ctx, calllog.Filter{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want cap 3", len(got))
	}
	if got[0].ID != "5" || got[2].ID != "3" {
		t.Errorf("kept entries = %v, want the 3 newest", ids(got))
	}
}

func TestMemory_Filters(t *testing.T) {
	m := calllog.NewMemory(10)
	ctx := context.Background()

	m.Record(ctx, entry("1", "positive", "Booking Inquiry"))
	m.Record(ctx, entry("2", "negative", "Complaint"))
	m.Record(ctx, entry("3", "positive", "Complaint"))

	got, _ := m.List(ctx, calllog.Filter{Sentiment: "positive"})
	if len(got) != 2 {
		t.Errorf("sentiment filter: got %v, want 2 entries", ids(got))
	}

	got, _ = m.List(ctx, calllog.Filter{Sentiment: "positive", Intent: "Complaint"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("combined filter: got %v, want [3]", ids(got))
	}

	got, _ = m.List(ctx, calllog.Filter{Intent: "Room Service"})
	if len(got) != 0 {
		t.Errorf("no-match filter: got %v, want empty", ids(got))
	}
}

func ids(entries []calllog.Entry) []string {
	res := make([]string, len(entries))
	for i, e := range entries {
		res[i] = e.ID
	}
	return res
}
