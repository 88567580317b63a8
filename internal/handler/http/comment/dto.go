// Package comment provides HTTP handlers for comment endpoints: listing and
// creating comments under an article, and deleting a comment by id.
package comment

import "time"

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
}
