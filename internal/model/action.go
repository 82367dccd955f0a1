// internal/model/action.go
package model

import (
	"fmt"
	"strings"
)

// Command is a campaign control command a user can pick from the alert's
// dropdown.
type Command string

const (
	CommandResume  Command = "resume"
	CommandPause   Command = "pause"
	CommandRestart Command = "restart"
)

// ParseCommand validates a raw command string from a dropdown value.
func ParseCommand(s string) (Command, error) {
	switch Command(s) {
	case CommandResume, CommandPause, CommandRestart:
		return Command(s), nil
	}
	return "", fmt.Errorf("unknown command %q", s)
}

// ActionRequest is a decoded dropdown selection: which command to run
// against which campaign.
type ActionRequest struct {
	Command    Command
	CampaignID string
}

// ParseActionValue decodes a dropdown option value of the form
// "<command>:<campaign_id>", splitting on the first colon so campaign IDs
// containing colons survive.
func ParseActionValue(value string) (ActionRequest, error) {
	cmdStr, id, _ := strings.Cut(value, ":")
	cmd, err := ParseCommand(cmdStr)
	if err != nil {
		return ActionRequest{}, err
	}
	return ActionRequest{Command: cmd, CampaignID: id}, nil
}

// ActionResult is what the campaign controller reports back. Failures are
// carried in Message, not as an error, so callers treat "upstream down" and
// "command rejected" the same way.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
