package discord

import (
	"context"
	"errors"
	"strings"

	"polaris-api/pkg/log"
)

var (
	ErrWebhookRequired = errors.New("discord: webhook URL is required")
	ErrInvalidWebhook  = errors.New("discord: webhook URL must be https://discord.com/api/webhooks/{id}/{token}")
)

// IDiscord posts embeds to a Discord channel webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New validates webhookURL and returns a client for it.
func New(l log.Logger, webhookURL string, cfg Config) (IDiscord, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil, ErrWebhookRequired
	}
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}
	return newImpl(l, webhookURL, cfg), nil
}

func validateWebhookURL(u string) error {
	if !strings.HasPrefix(u, webhookPrefix) {
		return ErrInvalidWebhook
	}
	parts := strings.SplitN(strings.TrimPrefix(u, webhookPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ErrInvalidWebhook
	}
	return nil
}
