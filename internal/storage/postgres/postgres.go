package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ForumApp/community-service/internal/config"
	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/storage"
)

const (
	communitiesDocument = "communities"
	usersDocument       = "users"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents(
	name TEXT PRIMARY KEY,
	body JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)

	return pgxpool.New(ctx, dsn)
}

type postgresStorage struct {
	db *pgxpool.Pool
}

// New returns a storage backend keeping each collection as one row of a
// two-row document table. The table is created on first use.
func New(ctx context.Context, db *pgxpool.Pool) (storage.Storage, error) {
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &postgresStorage{
		db: db,
	}, nil
}

func (s *postgresStorage) LoadCommunities(ctx context.Context) ([]*model.Community, error) {
	communities := []*model.Community{}
	if err := s.load(ctx, communitiesDocument, &communities); err != nil {
		return nil, err
	}

	return communities, nil
}

func (s *postgresStorage) SaveCommunities(ctx context.Context, communities []*model.Community) error {
	return s.save(ctx, communitiesDocument, communities)
}

func (s *postgresStorage) LoadUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := s.load(ctx, usersDocument, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *postgresStorage) SaveUsers(ctx context.Context, users []*model.User) error {
	return s.save(ctx, usersDocument, users)
}

func (s *postgresStorage) load(ctx context.Context, name string, out interface{}) error {
	var body []byte
	if err := s.db.QueryRow(
		ctx,
		"SELECT body FROM documents WHERE name = $1",
		name,
	).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to select document %s: %w", name, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", name, err)
	}

	return nil
}

func (s *postgresStorage) save(ctx context.Context, name string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", name, err)
	}

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO documents(name, body) VALUES($1, $2)
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		name,
		body,
	); err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", name, err)
	}

	return nil
}
