package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contoso/socialfeed/stores"
	"github.com/contoso/socialfeed/utils"
)

// CommentController exposes the comment operations under a parent post.
type CommentController struct {
	comments *stores.CommentStore
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(comments *stores.CommentStore) *CommentController {
	return &CommentController{comments: comments}
}

type createCommentRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

type updateCommentRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

// ListComments returns the post's comments oldest first.
func (c *CommentController) ListComments(ctx *gin.Context) {
	comments, err := c.comments.List(ctx.Request.Context(), ctx.Param("postId"))
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment under an existing post.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req createCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	comment, err := c.comments.Create(ctx.Request.Context(), ctx.Param("postId"), req.Username, req.Content)
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// GetComment returns the comment addressed by post id and comment id together.
func (c *CommentController) GetComment(ctx *gin.Context) {
	comment, err := c.comments.Get(ctx.Request.Context(), ctx.Param("postId"), ctx.Param("commentId"))
	if err != nil {
		storeFailure(ctx, err, "comment")
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// UpdateComment replaces the comment content when the caller is its author.
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	var req updateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	comment, err := c.comments.Update(ctx.Request.Context(), ctx.Param("postId"), ctx.Param("commentId"), req.Username, req.Content)
	if err != nil {
		storeFailure(ctx, err, "comment")
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// DeleteComment removes the comment under the same matching rule as GetComment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	if err := c.comments.Delete(ctx.Request.Context(), ctx.Param("postId"), ctx.Param("commentId")); err != nil {
		storeFailure(ctx, err, "comment")
		return
	}
	ctx.Status(http.StatusNoContent)
}
