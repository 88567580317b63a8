package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle retrieves the comments for one article, ordered by
	// created_at descending. An article without comments yields an empty
	// slice, not an error.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// Insert stores a new comment. Votes and CreatedAt are assigned by the
	// store (zero and now() respectively); the returned comment is the
	// complete inserted row.
	Insert(ctx context.Context, articleID int64, author, body string) (*entity.Comment, error)
	// Delete removes a comment by id and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
	// Count returns the total number of stored comments.
	Count(ctx context.Context) (int64, error)
}
