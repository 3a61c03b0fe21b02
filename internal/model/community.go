package model

type Community struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Posts       []*Post `json:"posts"`
}

// Clone returns a deep copy. Callers outside the repository only ever see
// clones, so mutating a returned community never touches stored state.
func (c *Community) Clone() *Community {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Posts = make([]*Post, len(c.Posts))
	for i, p := range c.Posts {
		clone.Posts[i] = p.Clone()
	}

	return &clone
}
