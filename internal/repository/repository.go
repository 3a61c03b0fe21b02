// Package repository is the content store: it owns the in-memory community
// and user collections, enforces identity and referential rules, and flushes
// every mutation through the persistence gateway.
package repository

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/storage"
)

type Repository struct {
	logger *zap.Logger
	store  storage.Storage

	// one writer at a time; readers copy under RLock
	mu          sync.RWMutex
	communities []*model.Community
	users       []*model.User
}

func New(logger *zap.Logger, store storage.Storage) *Repository {
	return &Repository{
		logger:      logger,
		store:       store,
		communities: []*model.Community{},
		users:       []*model.User{},
	}
}

// Load replaces both collections with the persisted state.
func (r *Repository) Load(ctx context.Context) error {
	communities, err := r.store.LoadCommunities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load communities: %w", err)
	}

	users, err := r.store.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.communities = communities
	r.users = users

	return nil
}

// flushCommunities must be called with the write lock held.
func (r *Repository) flushCommunities(ctx context.Context) error {
	if err := r.store.SaveCommunities(ctx, r.communities); err != nil {
		r.logger.Sugar().Errorf("failed to flush communities: %s", err.Error())
		return fmt.Errorf("%w: communities: %s", ErrPersistence, err.Error())
	}

	return nil
}

// flushUsers must be called with the write lock held.
func (r *Repository) flushUsers(ctx context.Context) error {
	if err := r.store.SaveUsers(ctx, r.users); err != nil {
		r.logger.Sugar().Errorf("failed to flush users: %s", err.Error())
		return fmt.Errorf("%w: users: %s", ErrPersistence, err.Error())
	}

	return nil
}

// findCommunity returns the stored record. Callers must hold the lock and
// must not leak the pointer.
func (r *Repository) findCommunity(id string) *model.Community {
	for _, c := range r.communities {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// findPost scans all communities' post sequences; ids are unique so the
// first match is the only match.
func (r *Repository) findPost(id string) *model.Post {
	for _, c := range r.communities {
		for _, p := range c.Posts {
			if p.ID == id {
				return p
			}
		}
	}

	return nil
}

// findUser returns the stored record. Callers must hold the lock and must
// not leak the pointer.
func (r *Repository) findUser(id string) *model.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}

	return nil
}
