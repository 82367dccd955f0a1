package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slack-go/slack"

	appErrors "github.com/justsakshi/smartlead-relay/internal/errors"
	"github.com/justsakshi/smartlead-relay/internal/model"
	"github.com/justsakshi/smartlead-relay/internal/service"
)

func TestWebhookNotifierPostsBlocks(t *testing.T) {
	var body []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	f := &service.AlertFormatter{Now: fixedClock}
	blocks := f.Format(model.CampaignEvent{EventType: "bounce_high", CampaignID: "A77"})

	n := &service.WebhookNotifier{URL: ts.URL, Client: ts.Client()}
	if err := n.Send(context.Background(), blocks, "Smartlead Alert: bounce_high"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	payload := string(body)
	for _, want := range []string{"Smartlead Alert: bounce_high", "resume:A77", "pause:A77", "restart:A77"} {
		if !strings.Contains(payload, want) {
			t.Errorf("webhook body missing %q", want)
		}
	}
}

func TestWebhookNotifierWithoutURL(t *testing.T) {
	n := &service.WebhookNotifier{Client: http.DefaultClient}

	err := n.Send(context.Background(), nil, "fallback")
	if err == nil {
		t.Fatal("expected error when no webhook URL is configured")
	}
	var notConfigured *appErrors.ErrNotConfigured
	if !errors.As(err, &notConfigured) {
		t.Errorf("error is %T, want *appErrors.ErrNotConfigured", err)
	}
}

func TestWebhookNotifierUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel_not_found", http.StatusNotFound)
	}))
	defer ts.Close()

	n := &service.WebhookNotifier{URL: ts.URL, Client: ts.Client()}
	err := n.Send(context.Background(), nil, "fallback")
	if err == nil {
		t.Fatal("expected error on non-success webhook status")
	}
	var delivery *appErrors.ErrDeliveryFailed
	if !errors.As(err, &delivery) {
		t.Errorf("error is %T, want *appErrors.ErrDeliveryFailed", err)
	}
}

func TestBotNotifierPostsToChannel(t *testing.T) {
	var gotPath string
	var gotChannel string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotChannel = r.FormValue("channel")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer ts.Close()

	client := slack.New("xoxb-test", slack.OptionAPIURL(ts.URL+"/"))
	n := &service.BotNotifier{Client: client, Channel: "smartlead-alerts"}

	if err := n.Send(context.Background(), nil, "Smartlead Alert: bounce_high"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !strings.HasSuffix(gotPath, "chat.postMessage") {
		t.Errorf("posted to %q, want chat.postMessage", gotPath)
	}
	if gotChannel != "smartlead-alerts" {
		t.Errorf("channel = %q, want smartlead-alerts", gotChannel)
	}
}

func TestSlackResponderPostsEphemeral(t *testing.T) {
	var decoded map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&decoded)
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	s := &service.SlackResponder{Client: ts.Client()}
	if err := s.Respond(context.Background(), ts.URL, "pause triggered for campaign XYZ"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	if decoded["text"] != "pause triggered for campaign XYZ" {
		t.Errorf("text = %v, want the confirmation message", decoded["text"])
	}
	if decoded["response_type"] != "ephemeral" {
		t.Errorf("response_type = %v, want ephemeral", decoded["response_type"])
	}
	if replace, ok := decoded["replace_original"].(bool); ok && replace {
		t.Error("confirmation must not replace the original message")
	}
}
