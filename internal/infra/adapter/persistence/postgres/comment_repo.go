package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT comment_id, article_id, votes, created_at, author, body
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.CommentID, &comment.ArticleID, &comment.Votes,
			&comment.CreatedAt, &comment.Author, &comment.Body); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

// Insert stores a new comment; votes and created_at are assigned here so a
// client can never back-date a comment or seed its score.
func (repo *CommentRepo) Insert(ctx context.Context, articleID int64, author, body string) (*entity.Comment, error) {
	const query = `
INSERT INTO comments (article_id, votes, author, body, created_at)
VALUES ($1, 0, $2, $3, now())
RETURNING comment_id, article_id, votes, created_at, author, body`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, articleID, author, body).
		Scan(&comment.CommentID, &comment.ArticleID, &comment.Votes,
			&comment.CreatedAt, &comment.Author, &comment.Body)
	if err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return &comment, nil
}

// Delete removes the comment and reports whether a row was actually
// affected; the use case turns a false into its not-found failure.
func (repo *CommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM comments WHERE comment_id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return affected > 0, nil
}

func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
