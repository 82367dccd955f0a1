// internal/service/notifier.go
package service

import (
	"context"
	"net/http"

	"github.com/slack-go/slack"

	appErrors "github.com/justsakshi/smartlead-relay/internal/errors"
)

// Notifier delivers a rendered alert to Slack. The two implementations are
// the two deployment modes: bot-token chat.postMessage and fixed
// incoming-webhook URL.
type Notifier interface {
	Send(ctx context.Context, blocks []slack.Block, fallback string) error
}

// BotNotifier posts via the Slack Web API with a bot token.
type BotNotifier struct {
	Client  *slack.Client
	Channel string
}

func (n *BotNotifier) Send(ctx context.Context, blocks []slack.Block, fallback string) error {
	_, _, err := n.Client.PostMessageContext(ctx, n.Channel,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return appErrors.NewDeliveryFailed("bot token", err)
	}
	return nil
}

// WebhookNotifier posts the full message body to a fixed incoming-webhook
// URL.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

func (n *WebhookNotifier) Send(ctx context.Context, blocks []slack.Block, fallback string) error {
	if n.URL == "" {
		return appErrors.NewNotConfigured("slack webhook URL")
	}
	msg := &slack.WebhookMessage{
		Text:   fallback,
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.URL, n.Client, msg); err != nil {
		return appErrors.NewDeliveryFailed("webhook", err)
	}
	return nil
}

// Responder posts the command confirmation back to the response_url Slack
// supplied with the interactive callback.
type Responder interface {
	Respond(ctx context.Context, responseURL, text string) error
}

// SlackResponder sends the confirmation as an ephemeral message that does
// not replace the original alert.
type SlackResponder struct {
	Client *http.Client
}

func (s *SlackResponder) Respond(ctx context.Context, responseURL, text string) error {
	msg := &slack.WebhookMessage{
		Text:            text,
		ResponseType:    "ephemeral",
		ReplaceOriginal: false,
	}
	return slack.PostWebhookCustomHTTPContext(ctx, responseURL, s.Client, msg)
}
