package model

import "time"

// Comment is immutable once created. Author is a free-form identifier and is
// not required to reference an existing user.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
