package comment

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput is the caller-supplied part of a new comment. The author is
// taken as given and not verified against the users table; that referential
// gap is inherited from the original API.
type CreateInput struct {
	Username string
	Body     string
}

// Service provides comment use cases on top of the repository.
type Service struct {
	Repo repository.CommentRepository
}

// ListForArticle retrieves the comments of one article, newest first. The
// caller is responsible for confirming the article exists; an article
// without comments is an empty slice, not a failure.
func (s *Service) ListForArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create validates the payload shape and inserts the comment. Votes start at
// zero and created_at is assigned by the store.
// Returns ErrUnprocessableComment if username or body is empty.
func (s *Service) Create(ctx context.Context, articleID int64, in CreateInput) (*entity.Comment, error) {
	if in.Username == "" || in.Body == "" {
		return nil, ErrUnprocessableComment
	}

	created, err := s.Repo.Insert(ctx, articleID, in.Username, in.Body)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// Delete removes a comment by id. The delete itself is the existence check:
// affecting zero rows means the comment was never there.
// Returns ErrCommentNotFound in that case.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

// Count returns the number of stored comments.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}
