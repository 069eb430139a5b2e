package repository

import (
	"context"

	"github.com/abdrasaq14/payever-test/internal/domain/entity"
)

// UserRepository defines the persistence contract for user records.
// Email uniqueness is enforced by the underlying store.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// UpdateAvatar sets or clears (nil) the avatar filename of a user.
	UpdateAvatar(ctx context.Context, id string, filename *string) error
}
