package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
)

type Community interface {
	Create(ctx context.Context, input dto.CreateCommunityRequest) (*model.Community, error)
	List(ctx context.Context) ([]*model.Community, error)
	CreatePost(ctx context.Context, communityID string, input dto.CreatePostRequest) (*model.Post, error)
	AddComment(ctx context.Context, postID string, input dto.CreateCommentRequest) (*model.Comment, error)
}

type Social interface {
	CreateUser(ctx context.Context, input dto.CreateUserRequest) (*model.User, error)
	Subscribe(ctx context.Context, userID, communityID string) error
	Upvote(ctx context.Context, postID, upvoterID string) (*model.Post, error)
}

type Feed interface {
	ListCommunityPosts(ctx context.Context, communityID string) ([]*dto.PostView, error)
	GetPost(ctx context.Context, postID string) (*dto.PostView, error)
	GetUserProfile(ctx context.Context, userID string) (*dto.Profile, error)
}

type Service struct {
	Community
	Social
	Feed
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Community: newCommunityService(logger, repo),
		Social:    newSocialService(logger, repo),
		Feed:      newFeedService(logger, repo),
	}
}
