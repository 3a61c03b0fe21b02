package dto

import (
	"time"

	"github.com/ForumApp/community-service/internal/model"
)

// Profile aggregates a user's record with both resolved sequences. A dangling
// subscription resolves to a null entry instead of being dropped, so the
// sequence stays count-symmetric with the stored subscription list.
type Profile struct {
	User            model.User         `json:"user"`
	Subscriptions   []*model.Community `json:"subscriptions"`
	UpvotesReceived []ResolvedUpvote   `json:"upvotes_received"`
}

type ResolvedUpvote struct {
	Post      *model.Post `json:"post"`
	UpvoterID string      `json:"upvoter_id"`
	CreatedAt time.Time   `json:"created_at"`
}
