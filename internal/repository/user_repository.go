package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
}
