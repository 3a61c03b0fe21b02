package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/storage"
)

const (
	communitiesFile = "communities.json"
	usersFile       = "users.json"
)

type fileStorage struct {
	dir string
}

// New returns a storage backend keeping the two collections as JSON documents
// in dir, one file per collection.
func New(dir string) storage.Storage {
	return &fileStorage{
		dir: dir,
	}
}

func (s *fileStorage) LoadCommunities(_ context.Context) ([]*model.Community, error) {
	communities := []*model.Community{}
	if err := s.load(communitiesFile, &communities); err != nil {
		return nil, err
	}

	return communities, nil
}

func (s *fileStorage) SaveCommunities(_ context.Context, communities []*model.Community) error {
	return s.save(communitiesFile, communities)
}

func (s *fileStorage) LoadUsers(_ context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := s.load(usersFile, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *fileStorage) SaveUsers(_ context.Context, users []*model.User) error {
	return s.save(usersFile, users)
}

func (s *fileStorage) load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		// a collection that was never saved is an empty collection
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}

func (s *fileStorage) save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}
