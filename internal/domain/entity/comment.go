package entity

import "time"

// Comment represents a comment on an article. Comments are created and
// deleted but never updated; CreatedAt is assigned by the store at insert
// time and Votes always starts at zero.
type Comment struct {
	CommentID int64
	ArticleID int64
	Votes     int
	CreatedAt time.Time
	Author    string
	Body      string
}
