package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/contoso/socialfeed/stores"
	"github.com/contoso/socialfeed/utils"
)

// PostController exposes the post CRUD operations. Each handler validates the
// body, calls exactly one store operation, and maps its result onto the wire.
type PostController struct {
	posts *stores.PostStore
}

// NewPostController creates a new PostController instance.
func NewPostController(posts *stores.PostStore) *PostController {
	return &PostController{posts: posts}
}

type createPostRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
}

type updatePostRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
}

// ListPosts returns every post, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts, err := p.posts.List(ctx.Request.Context())
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost persists a new post and returns it with zero counts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req createPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	post, err := p.posts.Create(ctx.Request.Context(), req.Username, req.Content)
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// GetPost returns a single post with its current counts.
func (p *PostController) GetPost(ctx *gin.Context) {
	post, err := p.posts.Get(ctx.Request.Context(), ctx.Param("postId"))
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// UpdatePost replaces the post content when the caller is its author.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req updatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, "invalid request body")
		return
	}

	post, err := p.posts.Update(ctx.Request.Context(), ctx.Param("postId"), req.Username, req.Content)
	if err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost removes the post along with its comments and likes.
func (p *PostController) DeletePost(ctx *gin.Context) {
	if err := p.posts.Delete(ctx.Request.Context(), ctx.Param("postId")); err != nil {
		storeFailure(ctx, err, "post")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// storeFailure maps store errors onto the documented statuses. Anything that
// is not a typed store failure is logged and reported as a 500.
func storeFailure(ctx *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		utils.NotFound(ctx, resource+" not found")
	case errors.Is(err, stores.ErrOwnershipMismatch):
		utils.OwnershipMismatch(ctx)
	default:
		utils.Logger.Error("store operation failed",
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err),
		)
		utils.InternalError(ctx)
	}
}
