// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DeliveryMode selects how alerts reach Slack. Exactly one mode is active
// per deployment, decided by which credentials are configured.
type DeliveryMode string

const (
	ModeBotToken DeliveryMode = "bot_token"
	ModeWebhook  DeliveryMode = "webhook"
)

// Config holds everything the relay reads from the environment. Built once
// at startup, passed by reference into the components, never mutated.
type Config struct {
	Port string

	SlackBotToken   string
	SlackChannel    string
	SlackWebhookURL string

	SmartleadKeys    []string
	SmartleadBaseURL string

	RoutePrefixes map[string]int

	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. Missing optional
// credentials degrade behaviour (simulation mode, webhook delivery) instead
// of failing startup.
func Load() *Config {
	keys := []string{}
	for _, k := range []string{"SMARTLEAD_API_KEY_1", "SMARTLEAD_API_KEY_2", "SMARTLEAD_API_KEY_3"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			keys = append(keys, v)
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		SlackBotToken:    os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannel:     getEnv("SLACK_CHANNEL", "smartlead-alerts"),
		SlackWebhookURL:  os.Getenv("SLACK_WEBHOOK_URL"),
		SmartleadKeys:    keys,
		SmartleadBaseURL: os.Getenv("SMARTLEAD_BASE_URL"),
		RoutePrefixes:    parseRoutes(getEnv("ROUTE_PREFIXES", "A:0,B:1")),
		HTTPTimeout:      getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

// DeliveryMode picks bot-token delivery when a bot token is configured,
// otherwise the fixed incoming-webhook URL.
func (c *Config) DeliveryMode() DeliveryMode {
	if c.SlackBotToken != "" {
		return ModeBotToken
	}
	return ModeWebhook
}

// SimulationMode is true when no upstream base URL is configured; campaign
// control calls are then simulated instead of sent.
func (c *Config) SimulationMode() bool {
	return c.SmartleadBaseURL == ""
}

// parseRoutes parses "A:0,B:1" into a prefix → credential-slot table.
// Malformed entries are dropped.
func parseRoutes(raw string) map[string]int {
	routes := map[string]int{}
	for _, entry := range strings.Split(raw, ",") {
		prefix, slotStr, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || prefix == "" {
			continue
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil || slot < 0 {
			continue
		}
		routes[prefix] = slot
	}
	return routes
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
