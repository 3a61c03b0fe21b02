package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ForumApp/community-service/internal/model"
)

// CreateCommunity inserts a community with a fresh id. Duplicate names are
// permitted.
func (r *Repository) CreateCommunity(ctx context.Context, name, description string) (*model.Community, error) {
	community := &model.Community{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Posts:       []*model.Post{},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.communities = append(r.communities, community)

	return community.Clone(), r.flushCommunities(ctx)
}

// FindCommunityByID returns a defensive copy of the community.
func (r *Repository) FindCommunityByID(ctx context.Context, id string) (*model.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	community := r.findCommunity(id)
	if community == nil {
		return nil, ErrNotFound
	}

	return community.Clone(), nil
}

// Communities returns a snapshot of the whole collection.
func (r *Repository) Communities(ctx context.Context) ([]*model.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Community, len(r.communities))
	for i, c := range r.communities {
		out[i] = c.Clone()
	}

	return out, nil
}

// CreatePost creates a post inside the community. Both the community and the
// author must resolve. The post id is appended to the author's authored list,
// and both collections are flushed; a failed flush does not roll back the
// in-memory mutation.
func (r *Repository) CreatePost(ctx context.Context, communityID, title, content, authorID string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	community := r.findCommunity(communityID)
	if community == nil {
		return nil, ErrNotFound
	}

	author := r.findUser(authorID)
	if author == nil {
		return nil, ErrNotFound
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    authorID,
		CreatedAt: time.Now().UTC(),
		Upvotes:   0,
		Comments:  []*model.Comment{},
	}

	community.Posts = append(community.Posts, post)
	author.Posts = append(author.Posts, post.ID)

	return post.Clone(), errors.Join(r.flushCommunities(ctx), r.flushUsers(ctx))
}

// FindPostByID returns a defensive copy of the post.
func (r *Repository) FindPostByID(ctx context.Context, id string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post := r.findPost(id)
	if post == nil {
		return nil, ErrNotFound
	}

	return post.Clone(), nil
}

// AddComment appends an immutable comment to the post. The author is a
// free-form identifier and is not checked against the user collection.
func (r *Repository) AddComment(ctx context.Context, postID, text, author string) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.findPost(postID)
	if post == nil {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	post.Comments = append(post.Comments, comment)

	commentCopy := *comment

	return &commentCopy, r.flushCommunities(ctx)
}
