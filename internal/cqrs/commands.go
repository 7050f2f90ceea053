package cqrs

type RegisterCommand struct {
	Email    string
	Password string
	Name     string
}

type LoginCommand struct {
	Email    string
	Password string
}

type RefreshTokenCommand struct {
	Token string
}

type CreatePostCommand struct {
	Title       string
	Content     string
	AuthorEmail string
}

type UpdatePostCommand struct {
	PostID         string
	Title          string
	Content        string
	RequesterEmail string
}

type DeletePostCommand struct {
	PostID         string
	RequesterEmail string
}

type AddCommentCommand struct {
	PostID      string
	Content     string
	AuthorEmail string
}

type DeleteCommentCommand struct {
	CommentID      string
	RequesterEmail string
}
