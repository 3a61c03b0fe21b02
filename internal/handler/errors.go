package handler

import (
	"errors"
	"net/http"

	"github.com/ForumApp/community-service/internal/repository"
)

var (
	errCommunityNotFound = errors.New("community not found")
	errPostNotFound      = errors.New("post not found")
	errUserNotFound      = errors.New("user not found")
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateIdentity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
