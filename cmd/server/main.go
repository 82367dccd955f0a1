// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"

	"github.com/justsakshi/smartlead-relay/internal/config"
	"github.com/justsakshi/smartlead-relay/internal/handler"
	"github.com/justsakshi/smartlead-relay/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Alert delivery: bot token wins when configured, else incoming webhook.
	var notifier service.Notifier
	switch cfg.DeliveryMode() {
	case config.ModeBotToken:
		notifier = &service.BotNotifier{
			Client:  slack.New(cfg.SlackBotToken, slack.OptionHTTPClient(httpClient)),
			Channel: cfg.SlackChannel,
		}
		log.Println("📨 Slack delivery via bot token to #" + cfg.SlackChannel)
	default:
		notifier = &service.WebhookNotifier{URL: cfg.SlackWebhookURL, Client: httpClient}
		if cfg.SlackWebhookURL == "" {
			log.Println("⚠️ Neither SLACK_BOT_TOKEN nor SLACK_WEBHOOK_URL set, alert delivery will fail")
		} else {
			log.Println("📨 Slack delivery via incoming webhook")
		}
	}

	// Campaign control: simulate until the upstream base URL is configured.
	var controller service.CampaignController
	if cfg.SimulationMode() {
		controller = service.SimulatedController{}
		log.Println("🧪 SMARTLEAD_BASE_URL not set, campaign actions run in simulation mode")
	} else {
		controller = &service.HTTPController{BaseURL: cfg.SmartleadBaseURL, Client: httpClient}
	}

	resolver := service.NewAccountResolver(cfg.SmartleadKeys, cfg.RoutePrefixes)
	log.Printf("🔑 %d Smartlead credential slot(s) configured", len(cfg.SmartleadKeys))

	eventHandler := &handler.EventHandler{
		Formatter: &service.AlertFormatter{},
		Notifier:  notifier,
	}
	actionHandler := &handler.ActionHandler{
		Resolver:   resolver,
		Controller: controller,
		Responder:  &service.SlackResponder{Client: httpClient},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/smartlead-event", eventHandler.HandleSmartleadEvent)
	r.Post("/slack-action", actionHandler.HandleSlackAction)
	r.Get("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	log.Println("🚀 Relay running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
