package events

import "fmt"

// Stream names
const (
	CommentNotificationsStream = "comment.notifications"
	PostAnalyticsStream        = "blog.analytics"
)

// Payloads on both streams are plain human-readable strings, not structured
// events. The broker carries them under a single "payload" stream field.

// CommentNotificationPayload addresses a notification to the post's author.
func CommentNotificationPayload(recipientUserID, message string) string {
	return fmt.Sprintf("User ID %s: %s", recipientUserID, message)
}

// PostViewedPayload records a single read of a post.
func PostViewedPayload(postID string) string {
	return fmt.Sprintf("Post viewed: %s", postID)
}
