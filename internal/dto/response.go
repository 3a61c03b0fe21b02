package dto

import "time"

// BasicResponse is the envelope for endpoints that acknowledge an action
// without returning an entity, such as subscribing to a community, and for
// every error body.
type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}
