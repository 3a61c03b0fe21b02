package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ForumApp/community-service/internal/model"
)

// CreateUser inserts a user with a caller-supplied id. Ids must be unique:
// creating an existing id fails with ErrDuplicateIdentity.
func (r *Repository) CreateUser(ctx context.Context, id string, subscriptions []string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findUser(id) != nil {
		return nil, ErrDuplicateIdentity
	}

	user := &model.User{
		ID:              id,
		Subscriptions:   append([]string{}, subscriptions...),
		Posts:           []string{},
		UpvotesReceived: []model.UpvoteReceipt{},
	}

	r.users = append(r.users, user)

	return user.Clone(), r.flushUsers(ctx)
}

// FindUserByID returns a defensive copy of the user.
func (r *Repository) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user := r.findUser(id)
	if user == nil {
		return nil, ErrNotFound
	}

	return user.Clone(), nil
}

// Subscribe appends the community id to the user's subscription set. A
// missing user and an existing subscription are both silent no-ops. The
// community id is not validated: a dangling subscription is permitted and
// surfaces as a null entry in the profile later.
func (r *Repository) Subscribe(ctx context.Context, userID, communityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findUser(userID)
	if user == nil {
		return nil
	}

	for _, id := range user.Subscriptions {
		if id == communityID {
			return nil
		}
	}

	user.Subscriptions = append(user.Subscriptions, communityID)

	return r.flushUsers(ctx)
}

// ProfileSnapshot is a user's record with both reference sequences resolved
// in the same lock acquisition. Dangling references resolve to nil entries at
// the matching index, never dropped.
type ProfileSnapshot struct {
	User          *model.User
	Subscriptions []*model.Community
	ReceiptPosts  []*model.Post
}

// ResolveProfile resolves the user's subscriptions and upvote receipts under
// one read lock, so the returned counters agree with the receipt sequence
// even while writers are active.
func (r *Repository) ResolveProfile(ctx context.Context, userID string) (*ProfileSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user := r.findUser(userID)
	if user == nil {
		return nil, ErrNotFound
	}

	snapshot := &ProfileSnapshot{
		User:          user.Clone(),
		Subscriptions: make([]*model.Community, len(user.Subscriptions)),
		ReceiptPosts:  make([]*model.Post, len(user.UpvotesReceived)),
	}

	for i, id := range user.Subscriptions {
		if community := r.findCommunity(id); community != nil {
			snapshot.Subscriptions[i] = community.Clone()
		}
	}

	for i, receipt := range user.UpvotesReceived {
		if post := r.findPost(receipt.PostID); post != nil {
			snapshot.ReceiptPosts[i] = post.Clone()
		}
	}

	return snapshot, nil
}

// Upvote increments the post's counter by exactly one. There is no dedup: a
// repeated upvote increments again and appends another receipt. The receipt
// is written to the author's record only when the author resolves; otherwise
// only the counter changes.
func (r *Repository) Upvote(ctx context.Context, postID, upvoterID string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.findPost(postID)
	if post == nil {
		return nil, ErrNotFound
	}

	post.Upvotes++

	var flushErr error
	if author := r.findUser(post.Author); author != nil {
		author.UpvotesReceived = append(author.UpvotesReceived, model.UpvoteReceipt{
			PostID:    postID,
			UpvoterID: upvoterID,
			CreatedAt: time.Now().UTC(),
		})
		flushErr = r.flushUsers(ctx)
	}

	return post.Clone(), errors.Join(flushErr, r.flushCommunities(ctx))
}
