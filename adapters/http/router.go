package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/devconnector/pkg/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type Handlers struct {
	User    *UserHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Post    *PostHandler
}

// NewRouter mounts the REST API under /api. authHeader names the request
// header carrying the raw session token.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, authHeader string, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc, authHeader, log)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/user", h.User.Register)

		api.POST("/auth", h.Auth.Login)
		api.GET("/auth", authMiddleware, h.Auth.CurrentUser)

		profiles := api.Group("/profile")
		{
			profiles.GET("", h.Profile.ListProfiles)
			profiles.GET("/user/:user_id", h.Profile.GetProfileByUser)

			private := profiles.Group("")
			private.Use(authMiddleware)
			{
				private.GET("/me", h.Profile.GetMyProfile)
				private.POST("", h.Profile.UpsertProfile)
				private.DELETE("", h.Profile.DeleteAccount)
				private.PUT("/experience", h.Profile.AddExperience)
				private.DELETE("/experience/:exp_id", h.Profile.DeleteExperience)
				private.PUT("/education", h.Profile.AddEducation)
				private.DELETE("/education/:edu_id", h.Profile.DeleteEducation)
			}
		}

		posts := api.Group("/posts")
		posts.Use(authMiddleware)
		{
			posts.POST("", h.Post.CreatePost)
			posts.GET("", h.Post.ListPosts)
			posts.GET("/:id", h.Post.GetPost)
			posts.DELETE("/:id", h.Post.DeletePost)
			posts.PUT("/like/:id", h.Post.LikePost)
			posts.PUT("/unlike/:id", h.Post.UnlikePost)
			posts.POST("/comment/:id", h.Post.AddComment)
			posts.DELETE("/comment/:post_id/:comment_id", h.Post.DeleteComment)
		}
	}

	return router
}
