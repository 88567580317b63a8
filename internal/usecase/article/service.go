package article

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Service provides article read and vote-patch use cases on top of the
// repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Get retrieves a single article by id.
// Returns ErrArticleNotFound if no such article exists.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// List retrieves every article with its comment count, newest first.
func (s *Service) List(ctx context.Context) ([]repository.ArticleSummary, error) {
	summaries, err := s.Repo.ListWithCommentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return summaries, nil
}

// AddVotes applies the signed delta to the article's vote counter and
// returns the updated article. The increment happens in one statement at the
// store, so two concurrent patches both land.
// Returns ErrArticleNotFound if no row was updated.
func (s *Service) AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error) {
	article, err := s.Repo.AddVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("add votes: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Exists confirms the article exists without fetching it. Handlers use this
// as a guard before operations on an article's sub-resources, where an empty
// result alone cannot distinguish a missing parent.
// Returns ErrArticleNotFound if it does not.
func (s *Service) Exists(ctx context.Context, id int64) error {
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("article exists: %w", err)
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}

// Count returns the number of stored articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}
