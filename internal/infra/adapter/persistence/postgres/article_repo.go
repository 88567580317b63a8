// Package postgres implements the repository contracts against PostgreSQL
// through database/sql. Each method is a single statement; absence is
// reported as a nil entity or a false flag, never as an error, so the use
// cases own the not-found semantics.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
FROM articles
WHERE article_id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ArticleID, &article.Title, &article.Topic, &article.Author,
			&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) ListWithCommentCount(ctx context.Context) ([]repository.ArticleSummary, error) {
	// COUNT(..)::TEXT keeps comment_count stringified on the wire, which the
	// original API's clients rely on.
	const query = `
SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
       COUNT(c.comment_id)::TEXT AS comment_count
FROM articles a
LEFT JOIN comments c ON c.article_id = a.article_id
GROUP BY a.article_id
ORDER BY a.created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithCommentCount: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]repository.ArticleSummary, 0, 32)
	for rows.Next() {
		var s repository.ArticleSummary
		if err := rows.Scan(&s.ArticleID, &s.Title, &s.Topic, &s.Author,
			&s.CreatedAt, &s.Votes, &s.ArticleImgURL, &s.CommentCount); err != nil {
			return nil, fmt.Errorf("ListWithCommentCount: Scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// AddVotes applies the delta in a single UPDATE expression so concurrent
// patches on the same article cannot lose updates.
func (repo *ArticleRepo) AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error) {
	const query = `
UPDATE articles
SET votes = votes + $1
WHERE article_id = $2
RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, delta, id).
		Scan(&article.ArticleID, &article.Title, &article.Topic, &article.Author,
			&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("AddVotes: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM articles WHERE article_id = $1 LIMIT 1`
	var one int
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return true, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
