package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/dev_data.sql
var seedDataSQL string

// MigrateUp creates the schema and loads the development seed rows.
// Statements are idempotent; running migrations on an existing database is a
// no-op apart from the seed, which skips rows that already exist.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS topics (
    slug        VARCHAR PRIMARY KEY,
    description VARCHAR
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    username   VARCHAR PRIMARY KEY,
    name       VARCHAR,
    avatar_url VARCHAR
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    article_id      SERIAL PRIMARY KEY,
    title           VARCHAR NOT NULL,
    topic           VARCHAR NOT NULL REFERENCES topics(slug),
    author          VARCHAR NOT NULL REFERENCES users(username),
    body            TEXT NOT NULL,
    created_at      TIMESTAMPTZ DEFAULT now(),
    votes           INT DEFAULT 0 NOT NULL,
    article_img_url VARCHAR
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    votes      INT DEFAULT 0 NOT NULL,
    created_at TIMESTAMPTZ DEFAULT now(),
    author     VARCHAR NOT NULL REFERENCES users(username),
    body       TEXT NOT NULL
)`); err != nil {
		return err
	}

	// Both list endpoints order by created_at DESC; comments are always
	// looked up by their parent article.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	if _, err := db.Exec(seedDataSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS comments`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS topics`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
