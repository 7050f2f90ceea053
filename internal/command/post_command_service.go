package command

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
)

// PostStore defines the post persistence operations used by the command services.
type PostStore interface {
	Create(*models.Post) error
	GetByID(string) (*models.Post, error)
	Update(*models.Post) error
	Delete(string) error
}

// PostViewCache keeps the Redis read model in step with post mutations.
type PostViewCache interface {
	CachePostView(ctx context.Context, view *models.PostView)
	InvalidatePostView(ctx context.Context, postID string)
}

// PostCommandService writes post state to PostgreSQL and keeps the Redis
// read model up to date.
type PostCommandService struct {
	postRepo PostStore
	userRepo UserStore
	readRepo PostViewCache
}

func NewPostCommandService(postRepo PostStore, userRepo UserStore, readRepo PostViewCache) *PostCommandService {
	return &PostCommandService{
		postRepo: postRepo,
		userRepo: userRepo,
		readRepo: readRepo,
	}
}

func (s *PostCommandService) CreatePost(cmd cqrs.CreatePostCommand) (*models.PostView, error) {
	author, err := s.userRepo.GetByEmail(cmd.AuthorEmail)
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		ID:        utils.GenerateID("pst"),
		Title:     cmd.Title,
		Content:   cmd.Content,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	view := postToView(post, author)
	s.readRepo.CachePostView(context.Background(), view)
	return view, nil
}

func (s *PostCommandService) UpdatePost(cmd cqrs.UpdatePostCommand) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(cmd.PostID)
	if err != nil {
		return nil, err
	}
	requester, err := s.userRepo.GetByEmail(cmd.RequesterEmail)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requester.ID {
		return nil, fmt.Errorf("forbidden")
	}
	post.Title = cmd.Title
	post.Content = cmd.Content
	post.UpdatedAt = time.Now().UTC()
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	view := postToView(post, requester)
	s.readRepo.CachePostView(context.Background(), view)
	return view, nil
}

// DeletePost removes the post and all of its comments. The repository performs
// the comment cascade in the same transaction as the post delete.
func (s *PostCommandService) DeletePost(cmd cqrs.DeletePostCommand) error {
	post, err := s.postRepo.GetByID(cmd.PostID)
	if err != nil {
		return err
	}
	requester, err := s.userRepo.GetByEmail(cmd.RequesterEmail)
	if err != nil {
		return err
	}
	if post.AuthorID != requester.ID {
		return fmt.Errorf("forbidden")
	}
	if err := s.postRepo.Delete(cmd.PostID); err != nil {
		return err
	}
	s.readRepo.InvalidatePostView(context.Background(), cmd.PostID)
	return nil
}

func postToView(p *models.Post, author *models.User) *models.PostView {
	return &models.PostView{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		AuthorName: author.Name,
	}
}
