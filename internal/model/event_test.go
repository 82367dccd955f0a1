package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justsakshi/smartlead-relay/internal/model"
)

func TestEventTimeParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01 06:30:00", time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC), true},
		{"1704067200", time.Unix(1704067200, 0), true},
		{"not-a-timestamp", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		ev := model.CampaignEvent{EventType: "bounce_high", Time: tc.raw}
		got, ok := ev.EventTime()
		if ok != tc.ok {
			t.Errorf("EventTime(%q) ok = %t, want %t", tc.raw, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("EventTime(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestBounceRateZeroSurvivesDecode(t *testing.T) {
	var ev model.CampaignEvent
	if err := json.Unmarshal([]byte(`{"event_type":"bounce_high","bounce_rate":0}`), &ev); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ev.BounceRate == nil {
		t.Fatal("explicit zero bounce rate decoded as absent")
	}
	if *ev.BounceRate != 0 {
		t.Errorf("bounce rate = %v, want 0", *ev.BounceRate)
	}

	var absent model.CampaignEvent
	if err := json.Unmarshal([]byte(`{"event_type":"bounce_high"}`), &absent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if absent.BounceRate != nil {
		t.Error("missing bounce rate should decode as nil")
	}
}
