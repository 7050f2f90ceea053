package handler

import (
	"net/http"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/middleware"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// PostCommander defines the write-side operations used by PostHandler.
type PostCommander interface {
	CreatePost(cqrs.CreatePostCommand) (*models.PostView, error)
	UpdatePost(cqrs.UpdatePostCommand) (*models.PostView, error)
	DeletePost(cqrs.DeletePostCommand) error
}

// PostQuerier defines the read-side operations used by PostHandler.
type PostQuerier interface {
	GetPost(cqrs.GetPostQuery) (*models.PostView, error)
	ListPosts(cqrs.ListPostsQuery) ([]models.PostView, error)
}

// PostHandler routes requests to the command or query service as appropriate.
type PostHandler struct {
	commands PostCommander
	queries  PostQuerier
}

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func NewPostHandler(commands PostCommander, queries PostQuerier) *PostHandler {
	return &PostHandler{commands: commands, queries: queries}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.CreatePost(cqrs.CreatePostCommand{
		Title:       req.Title,
		Content:     req.Content,
		AuthorEmail: email,
	})
	if err != nil {
		if err.Error() == "user not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "Author not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	views, err := h.queries.ListPosts(cqrs.ListPostsQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	if !utils.ValidatePostID(postID) {
		middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}

	view, err := h.queries.GetPost(cqrs.GetPostQuery{PostID: postID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	if !utils.ValidatePostID(postID) {
		middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.UpdatePost(cqrs.UpdatePostCommand{
		PostID:         postID,
		Title:          req.Title,
		Content:        req.Content,
		RequesterEmail: email,
	})
	if err != nil {
		switch err.Error() {
		case "post not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		case "forbidden":
			middleware.RespondWithError(c, http.StatusBadRequest, "Only the author may update this post")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	if !utils.ValidatePostID(postID) {
		middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}
	email, _ := middleware.GetUserEmail(c)

	err := h.commands.DeletePost(cqrs.DeletePostCommand{
		PostID:         postID,
		RequesterEmail: email,
	})
	if err != nil {
		switch err.Error() {
		case "post not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		case "forbidden":
			middleware.RespondWithError(c, http.StatusBadRequest, "Only the author may delete this post")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	c.String(http.StatusOK, "Post deleted")
}
