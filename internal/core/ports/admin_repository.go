package ports

import (
	"context"

	"github.com/sahayog/membership-system/internal/core/domain"
)

// AdminRepository defines persistence operations for admin credentials.
type AdminRepository interface {
	// FindByUsername returns the credential stored for username, or
	// ErrInvalidCredentials when no such credential exists.
	FindByUsername(ctx context.Context, username string) (*domain.AdminCredential, error)
	// Create inserts a new credential. Used by the startup seeder only.
	Create(ctx context.Context, cred *domain.AdminCredential) error
}
