package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type TopicRepository interface {
	List(ctx context.Context) ([]*entity.Topic, error)
}
