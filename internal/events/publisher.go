package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish appends a plain-text payload to the named stream. Callers treat
// delivery as fire-and-forget; they log the returned error but never fail the
// triggering request on it.
func (p *Publisher) Publish(ctx context.Context, stream, payload string) error {
	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"payload": payload,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", stream, err)
	}

	return nil
}

// PublishCommentNotification enqueues a notification addressed to the post's
// author on the comment notification stream.
func (p *Publisher) PublishCommentNotification(ctx context.Context, recipientUserID, message string) error {
	return p.Publish(ctx, CommentNotificationsStream, CommentNotificationPayload(recipientUserID, message))
}

// PublishPostViewed emits a view event for a post on the analytics stream.
func (p *Publisher) PublishPostViewed(ctx context.Context, postID string) error {
	return p.Publish(ctx, PostAnalyticsStream, PostViewedPayload(postID))
}
