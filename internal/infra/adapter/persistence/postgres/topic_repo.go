package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type TopicRepo struct {
	db *sql.DB
}

func NewTopicRepo(db *sql.DB) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) List(ctx context.Context) ([]*entity.Topic, error) {
	const query = `SELECT slug, description FROM topics`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := make([]*entity.Topic, 0, 8)
	for rows.Next() {
		var topic entity.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}
