// internal/service/executor.go
package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/justsakshi/smartlead-relay/internal/model"
)

// CampaignController issues control commands against the campaign platform.
// Failures are folded into the ActionResult, never returned as errors, so
// the action handler builds a confirmation the same way either way.
type CampaignController interface {
	Execute(ctx context.Context, campaignID string, cmd model.Command, apiKey string) model.ActionResult
}

// SimulatedController stands in while the real Smartlead control contract is
// unavailable. It makes no network call and always succeeds.
type SimulatedController struct{}

func (SimulatedController) Execute(_ context.Context, campaignID string, cmd model.Command, apiKey string) model.ActionResult {
	log.Printf("🧪 Simulating Smartlead API: campaign=%s command=%s key_set=%t", campaignID, cmd, apiKey != "")
	return model.ActionResult{
		Success: true,
		Message: fmt.Sprintf("%s triggered for campaign %s", cmd, campaignID),
	}
}

// HTTPController sends the command upstream once the base URL is known.
type HTTPController struct {
	BaseURL string
	Client  *http.Client
}

func (c *HTTPController) Execute(ctx context.Context, campaignID string, cmd model.Command, apiKey string) model.ActionResult {
	url := fmt.Sprintf("%s/campaigns/%s/%s", c.BaseURL, campaignID, cmd)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return model.ActionResult{Success: false, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return model.ActionResult{Success: false, Message: fmt.Sprintf("smartlead call failed: %v", err)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.ActionResult{Success: false, Message: fmt.Sprintf("smartlead returned status %d for %s on campaign %s", resp.StatusCode, cmd, campaignID)}
	}
	return model.ActionResult{
		Success: true,
		Message: fmt.Sprintf("%s triggered for campaign %s", cmd, campaignID),
	}
}
