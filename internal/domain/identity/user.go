package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/stylesphere/storefront/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents a registered shopper
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName     string `gorm:"type:varchar(200)"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(username, email, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetFullName sets the user's display name
func (u *User) SetFullName(fullName string) error {
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot exceed 200 characters")
	}
	u.FullName = strings.TrimSpace(fullName)
	u.UpdatedAt = time.Now()
	return nil
}

// ChangeEmail updates the user's email address. Uniqueness against other
// users is the repository's concern.
func (u *User) ChangeEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.UpdatedAt = time.Now()
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
