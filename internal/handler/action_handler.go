// internal/handler/action_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/justsakshi/smartlead-relay/internal/metrics"
	"github.com/justsakshi/smartlead-relay/internal/model"
	"github.com/justsakshi/smartlead-relay/internal/service"
)

// ActionHandler holds the dependencies for the Slack interactive-callback
// ingress.
type ActionHandler struct {
	Resolver   *service.AccountResolver
	Controller service.CampaignController
	Responder  service.Responder
}

// HandleSlackAction processes a dropdown selection. Slack expects a fast
// empty 200 regardless of what happens downstream, so only a payload that
// cannot be parsed produces a 500; unknown commands and confirmation
// failures are logged and acknowledged.
func (h *ActionHandler) HandleSlackAction(w http.ResponseWriter, r *http.Request) {
	metrics.ActionsReceived.Inc()

	payload := r.FormValue("payload")
	if payload == "" {
		log.Println("⚠️ slack action without payload field")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &cb); err != nil {
		log.Println("⚠️ failed to parse slack action payload:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	value := selectedValue(&cb)
	if value == "" {
		log.Println("⚠️ slack action carried no selected value")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	req, err := model.ParseActionValue(value)
	if err != nil {
		// Explicitly skipped: no control call, no confirmation, but
		// still a 200 so Slack stops resending the callback.
		metrics.UnrecognizedCommands.Inc()
		log.Printf("⚠️ skipping action %q: %v", value, err)
		w.WriteHeader(http.StatusOK)
		return
	}

	apiKey := h.Resolver.Resolve(req.CampaignID)
	result := h.Controller.Execute(r.Context(), req.CampaignID, req.Command, apiKey)
	metrics.ActionsExecuted.Inc()
	log.Printf("📩 action %s on campaign %s: success=%t", req.Command, req.CampaignID, result.Success)

	if cb.ResponseURL != "" {
		if err := h.Responder.Respond(r.Context(), cb.ResponseURL, result.Message); err != nil {
			metrics.ConfirmationFailures.Inc()
			log.Println("⚠️ failed to post confirmation to response_url:", err)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// selectedValue digs the chosen option out of the callback's first block
// action, falling back to the action's plain value for non-select elements.
func selectedValue(cb *slack.InteractionCallback) string {
	if len(cb.ActionCallback.BlockActions) == 0 {
		return ""
	}
	action := cb.ActionCallback.BlockActions[0]
	if action.SelectedOption.Value != "" {
		return action.SelectedOption.Value
	}
	return action.Value
}
