package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/repository"
)

func (h *Handler) usersCreate(c *gin.Context) {
	var input dto.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, err := h.services.Social.CreateUser(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) usersSubscribe(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))

	var input dto.SubscribeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// missing user and duplicate subscription are silent no-ops
	if err := h.services.Social.Subscribe(c.Request.Context(), userID, input.SubredditID); err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, fmt.Sprintf("subscribed user %s to community %s", userID, input.SubredditID)))
}

func (h *Handler) usersProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))

	profile, err := h.services.Feed.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errUserNotFound.Error()))
			return
		}
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, profile)
}
