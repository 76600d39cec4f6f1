package ports

import (
	"context"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// UpdateProfileInput carries optional profile changes; empty fields are left
// untouched. A non-empty Password is re-hashed before persistence.
type UpdateProfileInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	// Register creates a user and returns it together with a freshly issued token.
	Register(ctx context.Context, username, email, password, role string) (*domain.User, string, error)
	// Login authenticates by username or email and returns a signed token.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// Users lists every account. Restricted to admins at the transport layer.
	Users(ctx context.Context) ([]*domain.User, error)
}
