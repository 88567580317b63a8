// Package user provides the read-only user use cases.
package user

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Service provides user read use cases on top of the repository.
type Service struct {
	Repo repository.UserRepository
}

// List retrieves all users.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
