package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
)

type stubStorage struct {
	communities []*model.Community
	users       []*model.User
	failSaves   bool
}

func (s *stubStorage) LoadCommunities(_ context.Context) ([]*model.Community, error) {
	return s.communities, nil
}

func (s *stubStorage) SaveCommunities(_ context.Context, communities []*model.Community) error {
	if s.failSaves {
		return errors.New("disk full")
	}

	s.communities = communities
	return nil
}

func (s *stubStorage) LoadUsers(_ context.Context) ([]*model.User, error) {
	return s.users, nil
}

func (s *stubStorage) SaveUsers(_ context.Context, users []*model.User) error {
	if s.failSaves {
		return errors.New("disk full")
	}

	s.users = users
	return nil
}

func newTestService(t *testing.T, store *stubStorage) *Service {
	t.Helper()

	repo := repository.New(zap.NewNop(), store)
	require.NoError(t, repo.Load(context.Background()))

	return New(zap.NewNop(), repo)
}

func post(id string, createdAt time.Time) *model.Post {
	return &model.Post{
		ID:        id,
		Title:     id,
		Author:    "u1",
		CreatedAt: createdAt,
		Comments:  []*model.Comment{},
	}
}

func TestFeed_ListCommunityPosts_Ordering(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	services := newTestService(t, &stubStorage{
		communities: []*model.Community{
			{
				ID:    "c1",
				Name:  "books",
				Posts: []*model.Post{post("p1", t1), post("p2", t2), post("p3", t3)},
			},
		},
	})

	feed, err := services.Feed.ListCommunityPosts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "p3", feed[0].ID)
	assert.Equal(t, "p2", feed[1].ID)
	assert.Equal(t, "p1", feed[2].ID)
}

func TestFeed_ListCommunityPosts_TieBreakIsInsertionOrder(t *testing.T) {
	tie := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	later := tie.Add(time.Minute)

	services := newTestService(t, &stubStorage{
		communities: []*model.Community{
			{
				ID:    "c1",
				Name:  "books",
				Posts: []*model.Post{post("a", tie), post("b", tie), post("c", later)},
			},
		},
	})

	feed, err := services.Feed.ListCommunityPosts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "c", feed[0].ID)
	assert.Equal(t, "a", feed[1].ID)
	assert.Equal(t, "b", feed[2].ID)
}

func TestFeed_ListCommunityPosts_NotFound(t *testing.T) {
	services := newTestService(t, &stubStorage{})

	_, err := services.Feed.ListCommunityPosts(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFeed_TimestampRendering(t *testing.T) {
	// 17:00 UTC in winter is noon in New York (EST, UTC-5)
	winter := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	// 16:00 UTC in summer is noon in New York (EDT, UTC-4)
	summer := time.Date(2024, 7, 4, 16, 0, 0, 0, time.UTC)

	services := newTestService(t, &stubStorage{
		communities: []*model.Community{
			{
				ID:    "c1",
				Name:  "books",
				Posts: []*model.Post{post("w", winter), post("s", summer)},
			},
		},
	})

	view, err := services.Feed.GetPost(context.Background(), "w")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 12:00:00 EST", view.CreatedAt)

	view, err = services.Feed.GetPost(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04 12:00:00 EDT", view.CreatedAt)

	// the list endpoint renders with the same rule
	feed, err := services.Feed.ListCommunityPosts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "2024-07-04 12:00:00 EDT", feed[0].CreatedAt)
	assert.Equal(t, "2024-01-15 12:00:00 EST", feed[1].CreatedAt)
}

func TestFeed_GetPost_NotFound(t *testing.T) {
	services := newTestService(t, &stubStorage{})

	_, err := services.Feed.GetPost(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFeed_GetUserProfile(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	services := newTestService(t, &stubStorage{
		communities: []*model.Community{
			{
				ID:    "c1",
				Name:  "books",
				Posts: []*model.Post{post("p1", createdAt)},
			},
		},
		users: []*model.User{
			{
				ID:            "u1",
				Subscriptions: []string{"c1", "deleted"},
				Posts:         []string{"p1"},
				UpvotesReceived: []model.UpvoteReceipt{
					{PostID: "p1", UpvoterID: "u2", CreatedAt: createdAt},
					{PostID: "gone", UpvoterID: "u3", CreatedAt: createdAt},
				},
			},
		},
	})

	profile, err := services.Feed.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.User.ID)

	// a dangling subscription stays in the sequence as a null marker
	require.Len(t, profile.Subscriptions, 2)
	require.NotNil(t, profile.Subscriptions[0])
	assert.Equal(t, "books", profile.Subscriptions[0].Name)
	assert.Nil(t, profile.Subscriptions[1])

	require.Len(t, profile.UpvotesReceived, 2)
	require.NotNil(t, profile.UpvotesReceived[0].Post)
	assert.Equal(t, "p1", profile.UpvotesReceived[0].Post.ID)
	assert.Equal(t, "u2", profile.UpvotesReceived[0].UpvoterID)
	assert.Nil(t, profile.UpvotesReceived[1].Post)
	assert.Equal(t, "u3", profile.UpvotesReceived[1].UpvoterID)
}

func TestFeed_GetUserProfile_ConsistentUnderConcurrentUpvotes(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	services := newTestService(t, &stubStorage{
		communities: []*model.Community{
			{
				ID:    "c1",
				Name:  "books",
				Posts: []*model.Post{post("p1", createdAt)},
			},
		},
		users: []*model.User{
			{
				ID:              "u1",
				Subscriptions:   []string{"c1"},
				Posts:           []string{"p1"},
				UpvotesReceived: []model.UpvoteReceipt{},
			},
		},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			_, _ = services.Social.Upvote(context.Background(), "p1", "u2")
		}
	}()

	// every receipt on u1 is an upvote of p1, so a resolved profile must
	// always show the counter and the receipt sequence in agreement
	for i := 0; i < 200; i++ {
		profile, err := services.Feed.GetUserProfile(context.Background(), "u1")
		require.NoError(t, err)

		if n := len(profile.UpvotesReceived); n > 0 {
			resolved := profile.UpvotesReceived[n-1].Post
			require.NotNil(t, resolved)
			assert.Equal(t, n, resolved.Upvotes)
		}
	}
	<-done
}

func TestFeed_GetUserProfile_NotFound(t *testing.T) {
	services := newTestService(t, &stubStorage{})

	_, err := services.Feed.GetUserProfile(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_PersistenceFailureIsSuppressed(t *testing.T) {
	services := newTestService(t, &stubStorage{failSaves: true})

	// a failed flush never surfaces to the caller, the entity is returned
	community, err := services.Community.Create(context.Background(), communityInput("books"))
	require.NoError(t, err)
	require.NotNil(t, community)
	assert.Equal(t, "books", community.Name)
}
