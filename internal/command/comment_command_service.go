package command

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
)

// CommentStore defines the comment persistence operations used by the command services.
type CommentStore interface {
	Create(*models.Comment) error
	GetByID(string) (*models.Comment, error)
	Delete(string) error
}

// NotificationPublisher enqueues comment notifications for the post's author.
type NotificationPublisher interface {
	PublishCommentNotification(ctx context.Context, recipientUserID, message string) error
}

// CommentCommandService writes comment state and notifies post authors.
type CommentCommandService struct {
	commentRepo CommentStore
	postRepo    PostStore
	userRepo    UserStore
	publisher   NotificationPublisher
}

func NewCommentCommandService(
	commentRepo CommentStore,
	postRepo PostStore,
	userRepo UserStore,
	publisher NotificationPublisher,
) *CommentCommandService {
	return &CommentCommandService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// AddComment persists a comment and notifies the post's author. Notification
// delivery is fire-and-forget: a publish failure is logged and never rolls
// back the comment.
func (s *CommentCommandService) AddComment(cmd cqrs.AddCommentCommand) (*models.CommentView, error) {
	author, err := s.userRepo.GetByEmail(cmd.AuthorEmail)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(cmd.PostID)
	if err != nil {
		return nil, err
	}
	comment := &models.Comment{
		ID:        utils.GenerateID("cmt"),
		Content:   cmd.Content,
		AuthorID:  author.ID,
		PostID:    post.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s commented on your post: %s", author.Name, comment.Content)
	if err := s.publisher.PublishCommentNotification(context.Background(), post.AuthorID, message); err != nil {
		log.Printf("Failed to publish comment notification: %v", err)
	}

	return &models.CommentView{
		ID:         comment.ID,
		Content:    comment.Content,
		PostID:     comment.PostID,
		AuthorName: author.Name,
	}, nil
}

func (s *CommentCommandService) DeleteComment(cmd cqrs.DeleteCommentCommand) error {
	comment, err := s.commentRepo.GetByID(cmd.CommentID)
	if err != nil {
		return err
	}
	requester, err := s.userRepo.GetByEmail(cmd.RequesterEmail)
	if err != nil {
		return err
	}
	if comment.AuthorID != requester.ID {
		return fmt.Errorf("forbidden")
	}
	return s.commentRepo.Delete(cmd.CommentID)
}
