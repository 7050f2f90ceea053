package query

import (
	"context"
	"log"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
)

// PostReader defines the read-model lookups used by the post query service.
type PostReader interface {
	GetByID(ctx context.Context, id string) (*models.PostView, error)
	List(ctx context.Context) ([]models.PostView, error)
}

// ViewEventPublisher emits post-view analytics events.
type ViewEventPublisher interface {
	PublishPostViewed(ctx context.Context, postID string) error
}

// PostQueryService reads post views from the Redis cache (with a Postgres
// fallback) and reports single-post reads to the analytics stream.
type PostQueryService struct {
	readRepo  PostReader
	publisher ViewEventPublisher
}

func NewPostQueryService(readRepo PostReader, publisher ViewEventPublisher) *PostQueryService {
	return &PostQueryService{readRepo: readRepo, publisher: publisher}
}

// GetPost returns a single post view and emits exactly one view event on the
// found path. A missing post emits nothing. The event is fire-and-forget: a
// publish failure is logged and never affects the read result.
func (s *PostQueryService) GetPost(q cqrs.GetPostQuery) (*models.PostView, error) {
	ctx := context.Background()
	view, err := s.readRepo.GetByID(ctx, q.PostID)
	if err != nil {
		return nil, err
	}
	if err := s.publisher.PublishPostViewed(ctx, view.ID); err != nil {
		log.Printf("Failed to publish post view event: %v", err)
	}
	return view, nil
}

func (s *PostQueryService) ListPosts(q cqrs.ListPostsQuery) ([]models.PostView, error) {
	return s.readRepo.List(context.Background())
}
