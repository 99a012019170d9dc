package ports

import "context"

// AdminService verifies admin credentials.
type AdminService interface {
	// Login checks username/password against the stored credential and
	// returns the admin token on success. Unknown usernames and wrong
	// passwords both surface as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Seed inserts a bcrypt-hashed credential when the username is not
	// present yet. Called once at startup when seed config is provided.
	Seed(ctx context.Context, username, password string) error
}
