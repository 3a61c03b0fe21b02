package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/repository"
)

func (h *Handler) communitiesCreate(c *gin.Context) {
	var input dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	community, err := h.services.Community.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, community)
}

func (h *Handler) communitiesList(c *gin.Context) {
	communities, err := h.services.Community.List(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, communities)
}

func (h *Handler) communityPostsCreate(c *gin.Context) {
	communityID := strings.TrimSpace(c.Param("communityID"))

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Community.CreatePost(c.Request.Context(), communityID, input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errCommunityNotFound.Error()))
			return
		}
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *Handler) communityPostsList(c *gin.Context) {
	communityID := strings.TrimSpace(c.Param("communityID"))

	posts, err := h.services.Feed.ListCommunityPosts(c.Request.Context(), communityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errCommunityNotFound.Error()))
			return
		}
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}
