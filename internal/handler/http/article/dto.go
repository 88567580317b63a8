// Package article provides HTTP handlers for article endpoints.
// It includes handlers for listing articles with comment counts, fetching a
// single article, and adjusting an article's vote total.
package article

import "time"

// DTO represents the JSON structure for a full article.
type DTO struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// SummaryDTO represents an article in list responses: no body, and the
// comment count rides along as a string.
type SummaryDTO struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  string    `json:"comment_count"`
}
