// Package repository declares the persistence contracts the use cases depend
// on, together with the derived read shapes that do not map onto a single
// entity row.
package repository

import (
	"context"
	"time"

	"newsdesk/internal/domain/entity"
)

// ArticleSummary is the list read-model: an article projected without its
// body, plus the number of comments referencing it. CommentCount is carried
// as a string because the aggregation is stringified on the wire (a
// compatibility quirk of the original API that clients depend on).
type ArticleSummary struct {
	ArticleID     int64
	Title         string
	Topic         string
	Author        string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  string
}

type ArticleRepository interface {
	// Get retrieves an article by id. Returns (nil, nil) if no row exists.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// ListWithCommentCount retrieves all articles with their comment counts,
	// ordered by created_at descending. Articles without comments appear
	// with a count of "0" (left-join semantics).
	ListWithCommentCount(ctx context.Context) ([]ArticleSummary, error)
	// AddVotes atomically applies votes = votes + delta and returns the
	// updated row. Returns (nil, nil) if no row was updated.
	AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error)
	// Exists reports whether an article row with the given id exists.
	// It is a guard, not a fetch: no article data is returned.
	Exists(ctx context.Context, id int64) (bool, error)
	// Count returns the total number of stored articles.
	Count(ctx context.Context) (int64, error)
}
