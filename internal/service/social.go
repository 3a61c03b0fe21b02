package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
)

type socialService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newSocialService(logger *zap.Logger, repo *repository.Repository) Social {
	return &socialService{
		logger: logger,
		repo:   repo,
	}
}

func (s *socialService) CreateUser(ctx context.Context, input dto.CreateUserRequest) (*model.User, error) {
	user, err := s.repo.CreateUser(ctx, input.UserID, input.Subscriptions)

	return user, suppressPersistence(s.logger, "create user", err)
}

func (s *socialService) Subscribe(ctx context.Context, userID, communityID string) error {
	return suppressPersistence(s.logger, "subscribe", s.repo.Subscribe(ctx, userID, communityID))
}

func (s *socialService) Upvote(ctx context.Context, postID, upvoterID string) (*model.Post, error) {
	post, err := s.repo.Upvote(ctx, postID, upvoterID)

	return post, suppressPersistence(s.logger, "upvote", err)
}
