package model

import "time"

type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	Upvotes   int        `json:"upvotes"`
	Comments  []*Comment `json:"comments"`
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Comments = make([]*Comment, len(p.Comments))
	for i, c := range p.Comments {
		commentCopy := *c
		clone.Comments[i] = &commentCopy
	}

	return &clone
}
