package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contoso/socialfeed/stores"
	"github.com/contoso/socialfeed/utils"
)

// LikeController exposes the like/unlike operations for a post.
type LikeController struct {
	likes *stores.LikeStore
}

// NewLikeController creates a new LikeController instance.
func NewLikeController(likes *stores.LikeStore) *LikeController {
	return &LikeController{likes: likes}
}

type likeRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
}

type unlikeRequest struct {
	Username string `json:"username" binding:"omitempty,max=50"`
}

// LikePost records the like. Repeats are accepted and respond 201 with this
// call's timestamp even though the stored row keeps the first one.
func (l *LikeController) LikePost(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	like, err := l.likes.Like(ctx.Request.Context(), ctx.Param("postId"), req.Username)
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

// UnlikePost removes the caller's like. The body is optional; without a
// username every like on the post is removed.
func (l *LikeController) UnlikePost(ctx *gin.Context) {
	var req unlikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	if err := l.likes.Unlike(ctx.Request.Context(), ctx.Param("postId"), req.Username); err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.Status(http.StatusNoContent)
}
