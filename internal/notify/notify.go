package notify

import (
	"context"
	"log"
)

// Notifier is the outbound notification sink. Implementations must be safe
// to call concurrently; callers treat failures as best-effort.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that only logs. It is the default sink
// when no broker is configured.
func NewLogNotifier() Notifier { return logNotifier{} }

func (logNotifier) Notify(_ context.Context, recipient, subject, body string) error {
	log.Printf("[NOTIF] %s | %s | %s", recipient, subject, body)
	return nil
}
