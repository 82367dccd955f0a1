// internal/handler/event_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/justsakshi/smartlead-relay/internal/metrics"
	"github.com/justsakshi/smartlead-relay/internal/model"
	"github.com/justsakshi/smartlead-relay/internal/service"
)

// EventHandler holds the dependencies for the Smartlead event ingress.
type EventHandler struct {
	Formatter *service.AlertFormatter
	Notifier  service.Notifier
}

// HandleSmartleadEvent turns an inbound campaign event into a Slack alert.
// Delivery failure is terminal for the request: logged, counted, surfaced as
// a generic 500. Retries are the caller's problem.
func (h *EventHandler) HandleSmartleadEvent(w http.ResponseWriter, r *http.Request) {
	metrics.EventsReceived.Inc()

	var ev model.CampaignEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	eventID := uuid.NewString()
	blocks := h.Formatter.Format(ev)

	if err := h.Notifier.Send(r.Context(), blocks, "Smartlead Alert: "+ev.EventType); err != nil {
		metrics.DeliveryFailures.Inc()
		log.Printf("❌ event %s (%s): %v", eventID, ev.EventType, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed"})
		return
	}

	metrics.EventsDelivered.Inc()
	log.Printf("✅ event %s (%s) relayed to Slack", eventID, ev.EventType)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
