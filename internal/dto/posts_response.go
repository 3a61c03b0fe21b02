package dto

import "github.com/ForumApp/community-service/internal/model"

// PostView is a presentation copy of a post: created_at is rendered in the
// reference time zone as a string, the stored instant stays untouched.
type PostView struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Author    string           `json:"author"`
	CreatedAt string           `json:"created_at"`
	Upvotes   int              `json:"upvotes"`
	Comments  []*model.Comment `json:"comments"`
}
