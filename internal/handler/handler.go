package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/ForumApp/community-service/internal/service"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET"},
		AllowCredentials: true,
	}))

	communities := r.Group("/communities")
	{
		communities.POST("", h.communitiesCreate)
		communities.GET("", h.communitiesList)
		communities.POST("/:communityID/posts", h.communityPostsCreate)
		communities.GET("/:communityID/posts", h.communityPostsList)
	}

	posts := r.Group("/posts/:postID")
	{
		posts.GET("", h.postsGetByID)
		posts.POST("/upvote", h.postsUpvote)
		posts.POST("/comments", h.postsCommentsCreate)
	}

	users := r.Group("/users")
	{
		users.POST("", h.usersCreate)
		users.POST("/:userID/subscriptions", h.usersSubscribe)
		users.GET("/:userID/profile", h.usersProfile)
	}

	return r
}
