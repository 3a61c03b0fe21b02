package model

import "time"

type User struct {
	ID              string          `json:"id"`
	Subscriptions   []string        `json:"subscriptions"`
	Posts           []string        `json:"posts"`
	UpvotesReceived []UpvoteReceipt `json:"upvotes_received"`
}

// UpvoteReceipt records one upvote event on the receiving author's record.
// The post and upvoter references are weak: neither is re-validated after the
// receipt is written.
type UpvoteReceipt struct {
	PostID    string    `json:"post_id"`
	UpvoterID string    `json:"upvoter_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.Subscriptions = append([]string(nil), u.Subscriptions...)
	clone.Posts = append([]string(nil), u.Posts...)
	clone.UpvotesReceived = append([]UpvoteReceipt(nil), u.UpvotesReceived...)

	return &clone
}
