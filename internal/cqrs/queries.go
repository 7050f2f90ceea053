package cqrs

// ---------- Post queries ----------

// GetPostQuery fetches a single post by ID. Public; no ownership check.
type GetPostQuery struct {
	PostID string
}

// ListPostsQuery fetches every post. No pagination or filtering.
type ListPostsQuery struct{}
