package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
)

type mockPostReader struct {
	getByIDFn func(context.Context, string) (*models.PostView, error)
	listFn    func(context.Context) ([]models.PostView, error)
}

func (m *mockPostReader) GetByID(ctx context.Context, id string) (*models.PostView, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("post not found")
}
func (m *mockPostReader) List(ctx context.Context) ([]models.PostView, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.PostView{}, nil
}

type recordingViewEventPublisher struct {
	viewed []string
	err    error
}

func (r *recordingViewEventPublisher) PublishPostViewed(ctx context.Context, postID string) error {
	r.viewed = append(r.viewed, postID)
	return r.err
}

var testPostView = &models.PostView{
	ID: "pst-1", Title: "Post 1", Content: "Body",
	AuthorID: "usr-001", AuthorName: "Alice",
}

func TestGetPost(t *testing.T) {
	t.Run("found - emits exactly one view event", func(t *testing.T) {
		reader := &mockPostReader{getByIDFn: func(ctx context.Context, id string) (*models.PostView, error) {
			return testPostView, nil
		}}
		pub := &recordingViewEventPublisher{}
		svc := NewPostQueryService(reader, pub)

		view, err := svc.GetPost(cqrs.GetPostQuery{PostID: "pst-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Title != "Post 1" {
			t.Errorf("expected title Post 1, got %q", view.Title)
		}
		if len(pub.viewed) != 1 || pub.viewed[0] != "pst-1" {
			t.Fatalf("expected exactly one view event for pst-1, got %v", pub.viewed)
		}
	})

	t.Run("not found - emits no view event", func(t *testing.T) {
		pub := &recordingViewEventPublisher{}
		svc := NewPostQueryService(&mockPostReader{}, pub)

		_, err := svc.GetPost(cqrs.GetPostQuery{PostID: "pst-404"})
		if err == nil || err.Error() != "post not found" {
			t.Fatalf("expected post not found, got %v", err)
		}
		if len(pub.viewed) != 0 {
			t.Errorf("expected no view events, got %v", pub.viewed)
		}
	})

	t.Run("publish failure does not affect the read", func(t *testing.T) {
		reader := &mockPostReader{getByIDFn: func(ctx context.Context, id string) (*models.PostView, error) {
			return testPostView, nil
		}}
		pub := &recordingViewEventPublisher{err: fmt.Errorf("broker down")}
		svc := NewPostQueryService(reader, pub)

		view, err := svc.GetPost(cqrs.GetPostQuery{PostID: "pst-1"})
		if err != nil {
			t.Fatalf("expected best-effort publish, got error %v", err)
		}
		if view == nil {
			t.Fatal("expected view despite publish failure")
		}
	})
}

func TestListPosts(t *testing.T) {
	reader := &mockPostReader{listFn: func(ctx context.Context) ([]models.PostView, error) {
		return []models.PostView{*testPostView}, nil
	}}
	pub := &recordingViewEventPublisher{}
	svc := NewPostQueryService(reader, pub)

	views, err := svc.ListPosts(cqrs.ListPostsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].ID != "pst-1" {
		t.Fatalf("expected one post pst-1, got %v", views)
	}
	if len(pub.viewed) != 0 {
		t.Errorf("listing must not emit view events, got %v", pub.viewed)
	}
}
