// Package entity defines the core domain entities for the news service:
// topics, articles, comments, and users, along with the domain failure type
// the request pipeline understands.
package entity

import "time"

// Article represents a published article. Every field except Votes is
// immutable once the row exists; Votes is adjusted through atomic increments
// and may go negative.
type Article struct {
	ArticleID     int64
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
}
