package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

// AdminService implements the admin credential check.
type AdminService struct {
	repo  ports.AdminRepository
	token string
	log   zerolog.Logger
}

// NewAdminService returns an AdminService that hands out token on a
// successful login. The token is a static string configured at startup,
// not an issued credential.
func NewAdminService(repo ports.AdminRepository, token string, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, token: token, log: log}
}

// Login verifies username/password against the stored bcrypt hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("username", username).Msg("admin login rejected")
		return "", domain.ErrInvalidCredentials
	}

	s.log.Info().Str("username", username).Msg("admin login accepted")
	return s.token, nil
}

// Seed inserts a bcrypt-hashed credential unless the username already
// exists. Intended for startup bootstrap only.
func (s *AdminService) Seed(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil
	} else if err != domain.ErrInvalidCredentials {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cred := &domain.AdminCredential{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("admin credential seeded")
	return nil
}
