// Package topic provides the read-only topic use cases.
package topic

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Service provides topic read use cases on top of the repository.
type Service struct {
	Repo repository.TopicRepository
}

// List retrieves all topics.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}
