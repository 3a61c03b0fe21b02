// Package storage is the persistence gateway: it loads and saves the two
// collections as opaque documents and carries no business logic.
package storage

import (
	"context"

	"github.com/ForumApp/community-service/internal/model"
)

// Storage persists the community and user collections. Backends return empty
// collections, not an error, when no data has been written yet.
type Storage interface {
	LoadCommunities(ctx context.Context) ([]*model.Community, error)
	SaveCommunities(ctx context.Context, communities []*model.Community) error
	LoadUsers(ctx context.Context) ([]*model.User, error)
	SaveUsers(ctx context.Context, users []*model.User) error
}
