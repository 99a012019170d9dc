package domain

import "time"

// AdminCredential is a username/password-hash pair held in the
// admin_credentials collection. There is no session or token entity behind
// it; a successful check returns a static token configured at startup.
type AdminCredential struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
