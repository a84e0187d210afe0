package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contoso/socialfeed/config"
	"github.com/contoso/socialfeed/controllers"
	"github.com/contoso/socialfeed/middleware"
	"github.com/contoso/socialfeed/stores"
	"github.com/contoso/socialfeed/utils"
)

// OpenAPISpecPath is where the served API document lives relative to the
// working directory.
const OpenAPISpecPath = "static/openapi.yaml"

// SetupRouter wires routes, middlewares, stores, and controllers around the
// shared database handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	openAPIController := controllers.NewOpenAPIController(OpenAPISpecPath)
	r.GET("/openapi.json", openAPIController.GetSpec)

	clock := stores.SystemClock()
	ids := stores.UUIDGenerator()
	counter := stores.NewAggregateCounter(db)

	postController := controllers.NewPostController(stores.NewPostStore(db, clock, ids, counter))
	commentController := controllers.NewCommentController(stores.NewCommentStore(db, clock, ids))
	likeController := controllers.NewLikeController(stores.NewLikeStore(db, clock))

	posts := r.Group("/api/posts")
	posts.GET("", postController.ListPosts)
	posts.POST("", postController.CreatePost)
	posts.GET("/:postId", postController.GetPost)
	posts.PATCH("/:postId", postController.UpdatePost)
	posts.DELETE("/:postId", postController.DeletePost)

	posts.GET("/:postId/comments", commentController.ListComments)
	posts.POST("/:postId/comments", commentController.CreateComment)
	posts.GET("/:postId/comments/:commentId", commentController.GetComment)
	posts.PATCH("/:postId/comments/:commentId", commentController.UpdateComment)
	posts.DELETE("/:postId/comments/:commentId", commentController.DeleteComment)

	posts.POST("/:postId/likes", likeController.LikePost)
	posts.DELETE("/:postId/likes", likeController.UnlikePost)

	r.NoRoute(func(ctx *gin.Context) {
		utils.NotFound(ctx, "route not found")
	})

	return r
}
