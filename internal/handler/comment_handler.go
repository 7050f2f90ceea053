package handler

import (
	"net/http"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/middleware"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// CommentCommander defines the write-side operations used by CommentHandler.
// Comments have no read side beyond what posts expose.
type CommentCommander interface {
	AddComment(cqrs.AddCommentCommand) (*models.CommentView, error)
	DeleteComment(cqrs.DeleteCommentCommand) error
}

type CommentHandler struct {
	commands CommentCommander
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func NewCommentHandler(commands CommentCommander) *CommentHandler {
	return &CommentHandler{commands: commands}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	postID := c.Param("id")
	if !utils.ValidatePostID(postID) {
		middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.AddComment(cqrs.AddCommentCommand{
		PostID:      postID,
		Content:     req.Content,
		AuthorEmail: email,
	})
	if err != nil {
		switch err.Error() {
		case "post not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Post not found")
		case "user not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Author not found")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to add comment")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	if !utils.ValidateCommentID(commentID) {
		middleware.RespondWithError(c, http.StatusNotFound, "Comment not found")
		return
	}
	email, _ := middleware.GetUserEmail(c)

	err := h.commands.DeleteComment(cqrs.DeleteCommentCommand{
		CommentID:      commentID,
		RequesterEmail: email,
	})
	if err != nil {
		switch err.Error() {
		case "comment not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Comment not found")
		case "forbidden":
			middleware.RespondWithError(c, http.StatusBadRequest, "Only the author may delete this comment")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}

	c.String(http.StatusOK, "Comment deleted")
}
