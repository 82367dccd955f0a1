// internal/model/event.go
package model

import (
	"strconv"
	"time"
)

// CampaignEvent is the payload Smartlead posts to the relay. Everything
// except EventType is optional; a missing field is simply left out of the
// rendered alert.
type CampaignEvent struct {
	EventType    string `json:"event_type"`
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	// Pointer so an explicit 0 survives: a zero bounce rate is a real
	// value, not an absent one.
	BounceRate *float64 `json:"bounce_rate,omitempty"`
	Inbox      string   `json:"inbox,omitempty"`
	Domain     string   `json:"domain,omitempty"`
	Time       string   `json:"time,omitempty"`
}

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// EventTime parses the event's time field. The second return is false when
// the field is absent or unparsable, in which case callers fall back to the
// current time.
func (e CampaignEvent) EventTime() (time.Time, bool) {
	if e.Time == "" {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, e.Time); err == nil {
			return t, true
		}
	}
	if secs, err := strconv.ParseInt(e.Time, 10, 64); err == nil {
		return time.Unix(secs, 0), true
	}
	return time.Time{}, false
}
