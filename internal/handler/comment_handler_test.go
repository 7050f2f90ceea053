package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ---- mock implementations ----

type mockCommentCommander struct {
	addFn    func(cqrs.AddCommentCommand) (*models.CommentView, error)
	deleteFn func(cqrs.DeleteCommentCommand) error
}

func (m *mockCommentCommander) AddComment(cmd cqrs.AddCommentCommand) (*models.CommentView, error) {
	if m.addFn != nil {
		return m.addFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockCommentCommander) DeleteComment(cmd cqrs.DeleteCommentCommand) error {
	if m.deleteFn != nil {
		return m.deleteFn(cmd)
	}
	return fmt.Errorf("not configured")
}

// ---- helpers ----

func newCommentTestRouter(cmds CommentCommander, authEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCommentHandler(cmds)
	api := r.Group("/api")
	api.POST("/posts/:id/comments", fakeAuthUser(authEmail), h.AddComment)
	api.DELETE("/comments/:id", fakeAuthUser(authEmail), h.DeleteComment)
	return r
}

// ---- test data ----

var cTestView = &models.CommentView{
	ID: "cmt-001", Content: "Nice post", PostID: "pst-001", AuthorName: "Bob",
}

// ---- tests ----

func TestAddCommentHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		addFn          func(cqrs.AddCommentCommand) (*models.CommentView, error)
		expectedStatus int
	}{
		{
			name:           "created - valid comment",
			body:           map[string]string{"content": "Nice post"},
			addFn:          func(cmd cqrs.AddCommentCommand) (*models.CommentView, error) { return cTestView, nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing content",
			body:           map[string]string{},
			addFn:          nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found - missing post",
			body: map[string]string{"content": "Nice post"},
			addFn: func(cmd cqrs.AddCommentCommand) (*models.CommentView, error) {
				return nil, fmt.Errorf("post not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCommentTestRouter(&mockCommentCommander{addFn: tt.addFn}, "bob@example.com")
			w := doRequest(router, http.MethodPost, "/api/posts/pst-001/comments", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected status %d, got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteCommentHandler(t *testing.T) {
	tests := []struct {
		name           string
		deleteFn       func(cqrs.DeleteCommentCommand) error
		expectedStatus int
	}{
		{
			name:           "success - author deletes own comment",
			deleteFn:       func(cmd cqrs.DeleteCommentCommand) error { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - non-author",
			deleteFn:       func(cmd cqrs.DeleteCommentCommand) error { return fmt.Errorf("forbidden") },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found - missing comment",
			deleteFn:       func(cmd cqrs.DeleteCommentCommand) error { return fmt.Errorf("comment not found") },
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCommentTestRouter(&mockCommentCommander{deleteFn: tt.deleteFn}, "bob@example.com")
			w := doRequest(router, http.MethodDelete, "/api/comments/cmt-001", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected status %d, got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK && w.Body.String() != "Comment deleted" {
				t.Errorf("expected body %q, got %q", "Comment deleted", w.Body.String())
			}
		})
	}
}
