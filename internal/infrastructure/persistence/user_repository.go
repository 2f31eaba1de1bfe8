package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylesphere/storefront/internal/domain/identity"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save creates a new user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update persists changes to an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email (case-insensitive)
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&identity.User{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

// ExistsByUsername reports whether a user with the given username exists
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&identity.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEmailExcluding reports whether another user already claims the email
func (r *GormUserRepository) ExistsByEmailExcluding(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&identity.User{}).
		Where("lower(email) = ? AND id <> ?", strings.ToLower(email), excludeID).
		Count(&count).Error
	return count > 0, err
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
