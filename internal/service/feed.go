package service

import (
	"container/heap"
	"context"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
)

// All read endpoints render timestamps with one rule: 24-hour clock in the
// reference zone. The stored instants stay UTC.
const presentationLayout = "2006-01-02 15:04:05 MST"

// tzdata is compiled in, the lookup cannot fail
var eastern, _ = time.LoadLocation("America/New_York")

type feedService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFeedService(logger *zap.Logger, repo *repository.Repository) Feed {
	return &feedService{
		logger: logger,
		repo:   repo,
	}
}

// ListCommunityPosts returns the community's posts ordered by creation time
// descending. Ordering is a full sort on every call via a max-heap; ties keep
// the original insertion order.
func (s *feedService) ListCommunityPosts(ctx context.Context, communityID string) ([]*dto.PostView, error) {
	community, err := s.repo.FindCommunityByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	h := make(feedHeap, len(community.Posts))
	for i, p := range community.Posts {
		h[i] = feedItem{post: p, seq: i}
	}
	heap.Init(&h)

	out := make([]*dto.PostView, 0, len(community.Posts))
	for h.Len() > 0 {
		item := heap.Pop(&h).(feedItem)
		out = append(out, newPostView(item.post))
	}

	return out, nil
}

func (s *feedService) GetPost(ctx context.Context, postID string) (*dto.PostView, error) {
	post, err := s.repo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return newPostView(post), nil
}

// GetUserProfile resolves the user's subscriptions into community snapshots
// and the upvote receipts into resolved posts. The whole profile is one
// repository snapshot, so the resolved counters never run ahead of the
// receipt sequence. Dangling references resolve to null entries, never
// dropped, so both sequences stay count-symmetric with the stored record.
func (s *feedService) GetUserProfile(ctx context.Context, userID string) (*dto.Profile, error) {
	snapshot, err := s.repo.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	upvotes := make([]dto.ResolvedUpvote, len(snapshot.User.UpvotesReceived))
	for i, receipt := range snapshot.User.UpvotesReceived {
		upvotes[i] = dto.ResolvedUpvote{
			Post:      snapshot.ReceiptPosts[i],
			UpvoterID: receipt.UpvoterID,
			CreatedAt: receipt.CreatedAt,
		}
	}

	return &dto.Profile{
		User:            *snapshot.User,
		Subscriptions:   snapshot.Subscriptions,
		UpvotesReceived: upvotes,
	}, nil
}

func newPostView(p *model.Post) *dto.PostView {
	return &dto.PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt.In(eastern).Format(presentationLayout),
		Upvotes:   p.Upvotes,
		Comments:  p.Comments,
	}
}

type feedItem struct {
	post *model.Post
	seq  int
}

type feedHeap []feedItem

func (h feedHeap) Len() int { return len(h) }

func (h feedHeap) Less(i, j int) bool {
	if h[i].post.CreatedAt.Equal(h[j].post.CreatedAt) {
		return h[i].seq < h[j].seq
	}

	return h[i].post.CreatedAt.After(h[j].post.CreatedAt)
}

func (h feedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *feedHeap) Push(x interface{}) { *h = append(*h, x.(feedItem)) }

func (h *feedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
