package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/repository"
	"github.com/ForumApp/community-service/internal/service"
)

type stubStorage struct{}

func (s *stubStorage) LoadCommunities(_ context.Context) ([]*model.Community, error) {
	return []*model.Community{}, nil
}

func (s *stubStorage) SaveCommunities(_ context.Context, _ []*model.Community) error {
	return nil
}

func (s *stubStorage) LoadUsers(_ context.Context) ([]*model.User, error) {
	return []*model.User{}, nil
}

func (s *stubStorage) SaveUsers(_ context.Context, _ []*model.User) error {
	return nil
}

func newTestServices(t *testing.T) *service.Service {
	t.Helper()

	repo := repository.New(zap.NewNop(), &stubStorage{})
	require.NoError(t, repo.Load(context.Background()))

	return service.New(zap.NewNop(), repo)
}

func runScript(t *testing.T, services *service.Service, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	prompt := New(services, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	prompt.Run(context.Background())

	return out.String()
}

func TestPrompt_CreateUserAndCommunity(t *testing.T) {
	out := runScript(t, newTestServices(t),
		"create user",
		"u1",
		"user creates community",
		"golang",
		"all things go",
		"exit",
	)

	assert.Contains(t, out, "User created: u1")
	assert.Contains(t, out, "Community created: golang")
}

func TestPrompt_InvalidCommand(t *testing.T) {
	out := runScript(t, newTestServices(t),
		"user deletes the internet",
		"exit",
	)

	assert.Contains(t, out, "Invalid command")
}

func TestPrompt_PostInMissingCommunity(t *testing.T) {
	out := runScript(t, newTestServices(t),
		"user creates a post",
		"nowhere",
		"title",
		"content",
		"u1",
		"exit",
	)

	assert.Contains(t, out, "Community with ID nowhere not found.")
}

func TestPrompt_UpvoteMissingPost(t *testing.T) {
	out := runScript(t, newTestServices(t),
		"user upvotes post",
		"missing",
		"u1",
		"exit",
	)

	assert.Contains(t, out, "Post with ID missing not found.")
}

func TestPrompt_SubscribeConfirms(t *testing.T) {
	services := newTestServices(t)

	out := runScript(t, services,
		"create user",
		"u1",
		"user subscribes to a community",
		"u1",
		"c-42",
		"exit",
	)

	assert.Contains(t, out, "User u1 subscribed to community c-42")
}

func TestPrompt_EndOfInputStopsLoop(t *testing.T) {
	// no trailing "exit": the loop must end when input runs out
	services := newTestServices(t)

	var out bytes.Buffer
	prompt := New(services, strings.NewReader("create user\nu1\n"), &out)
	prompt.Run(context.Background())

	assert.Contains(t, out.String(), "User created: u1")
}
