package listener

import (
	"context"
	"log"
)

// NotificationListener consumes comment notification payloads and logs them.
// It is the stub for future alerting/email delivery; nothing downstream reads
// its output yet.
type NotificationListener struct{}

func NewNotificationListener() *NotificationListener {
	return &NotificationListener{}
}

// Handle is the stream subscriber handler for the comment notification stream.
func (l *NotificationListener) Handle(ctx context.Context, payload string) error {
	log.Printf("[NOTIFICATION RECEIVED] %s", payload)
	return nil
}
