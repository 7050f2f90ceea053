package models

// PostView is the read-optimised projection of a post, joined with its author.
type PostView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
}

// CommentView is the read-optimised projection of a comment.
type CommentView struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	PostID     string `json:"postId"`
	AuthorName string `json:"authorName"`
}
