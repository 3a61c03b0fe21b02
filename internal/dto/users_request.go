package dto

type CreateUserRequest struct {
	UserID        string   `json:"userId" binding:"required"`
	Subscriptions []string `json:"subscriptions"`
}

type SubscribeRequest struct {
	SubredditID string `json:"subredditId" binding:"required"`
}
