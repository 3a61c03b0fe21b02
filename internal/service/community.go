package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
)

type communityService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommunityService(logger *zap.Logger, repo *repository.Repository) Community {
	return &communityService{
		logger: logger,
		repo:   repo,
	}
}

func (s *communityService) Create(ctx context.Context, input dto.CreateCommunityRequest) (*model.Community, error) {
	community, err := s.repo.CreateCommunity(ctx, input.Name, input.Description)

	return community, s.suppressPersistence("create community", err)
}

func (s *communityService) List(ctx context.Context) ([]*model.Community, error) {
	return s.repo.Communities(ctx)
}

func (s *communityService) CreatePost(ctx context.Context, communityID string, input dto.CreatePostRequest) (*model.Post, error) {
	post, err := s.repo.CreatePost(ctx, communityID, input.Title, input.Content, input.Author)

	return post, s.suppressPersistence("create post", err)
}

func (s *communityService) AddComment(ctx context.Context, postID string, input dto.CreateCommentRequest) (*model.Comment, error) {
	comment, err := s.repo.AddComment(ctx, postID, input.Text, input.Author)

	return comment, s.suppressPersistence("add comment", err)
}

func (s *communityService) suppressPersistence(op string, err error) error {
	return suppressPersistence(s.logger, op, err)
}
