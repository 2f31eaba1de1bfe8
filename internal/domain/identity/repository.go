package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
