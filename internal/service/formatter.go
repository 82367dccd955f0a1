// internal/service/formatter.go
package service

import (
	"strconv"
	"time"

	"github.com/slack-go/slack"

	"github.com/justsakshi/smartlead-relay/internal/model"
)

// ActionSelectID is the action_id Slack echoes back when a user picks a
// command from the alert dropdown.
const ActionSelectID = "campaign_action_select"

const timeLayout = "Jan 2, 2006 3:04:05 PM MST"

// AlertFormatter renders a Smartlead event into Slack Block Kit blocks.
// Pure apart from the clock; Now is swappable so golden tests stay stable.
type AlertFormatter struct {
	Now func() time.Time
}

// Format builds the alert: a header with the event type, a section with one
// field per present event attribute (fixed order: Campaign, Bounce rate,
// Inbox, Domain, Time), and — only when the event names a campaign — a
// dropdown offering the three control commands.
func (f *AlertFormatter) Format(ev model.CampaignEvent) []slack.Block {
	title := "Smartlead Alert: " + ev.EventType

	var fields []*slack.TextBlockObject
	if ev.CampaignName != "" {
		fields = append(fields, markdownField("*Campaign*: "+ev.CampaignName))
	}
	if ev.BounceRate != nil {
		rate := strconv.FormatFloat(*ev.BounceRate, 'f', -1, 64)
		fields = append(fields, markdownField("*Bounce rate*: "+rate+" percent"))
	}
	if ev.Inbox != "" {
		fields = append(fields, markdownField("*Inbox*: "+ev.Inbox))
	}
	if ev.Domain != "" {
		fields = append(fields, markdownField("*Domain*: "+ev.Domain))
	}
	fields = append(fields, markdownField("*Time*: "+f.eventTime(ev).Format(timeLayout)))

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		slack.NewSectionBlock(nil, fields, nil),
	}

	if ev.CampaignID != "" {
		blocks = append(blocks, actionMenu(ev.CampaignID))
	}
	return blocks
}

// eventTime returns the event's own timestamp when present and parsable,
// otherwise the formatting moment.
func (f *AlertFormatter) eventTime(ev model.CampaignEvent) time.Time {
	if t, ok := ev.EventTime(); ok {
		return t
	}
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// actionMenu is the same three-command dropdown for every event type; the
// option values carry "<command>:<campaign_id>" back through Slack.
func actionMenu(campaignID string) *slack.ActionBlock {
	options := []*slack.OptionBlockObject{
		commandOption(model.CommandResume, "Resume campaign", campaignID),
		commandOption(model.CommandPause, "Pause campaign", campaignID),
		commandOption(model.CommandRestart, "Restart campaign", campaignID),
	}

	selectEl := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, "Select action", false, false),
		ActionSelectID,
		options...,
	)
	return slack.NewActionBlock("", selectEl)
}

func commandOption(cmd model.Command, label, campaignID string) *slack.OptionBlockObject {
	return slack.NewOptionBlockObject(
		string(cmd)+":"+campaignID,
		slack.NewTextBlockObject(slack.PlainTextType, label, false, false),
		nil,
	)
}

func markdownField(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
