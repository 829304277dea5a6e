package discord

import "context"

// IDiscord pushes messages to a Discord channel through an incoming webhook.
// It backs both the error-report pipeline and the desktop notification channel.
type IDiscord interface {
	// SendMessage sends a simple text message.
	SendMessage(ctx context.Context, content string) error

	// SendEmbed sends an embed message with options.
	SendEmbed(ctx context.Context, options MessageOptions) error

	// SendError sends an error message.
	SendError(ctx context.Context, title, description string, err error) error

	// ReportBug sends an internal error report.
	ReportBug(ctx context.Context, message string) error

	// SendNotification sends a notification with custom fields.
	SendNotification(ctx context.Context, title, description string, fields map[string]string) error

	// GetWebhookURL returns the webhook URL.
	GetWebhookURL() string

	// Close closes idle connections.
	Close() error
}
