package ports

import (
	"context"

	"github.com/sahayog/membership-system/internal/core/domain"
)

// SearchMembersFilter carries the query parameters for the member search.
// All fields are optional; an empty filter matches everything.
type SearchMembersFilter struct {
	FirstName string // case-insensitive substring match on firstName
	LastName  string // case-insensitive substring match on lastName
	Email     string // exact match, case-insensitive
	Phone     string // exact match
	Limit     int64  // max rows returned (capped at 100 by the service)
}

// MemberUpdate is the sparse update applied by the partial-update endpoint.
// Nil fields are left untouched; only the whitelisted contact fields can
// change through this path.
type MemberUpdate struct {
	Phone            *string
	Email            *string
	CurrentAddress   *string
	PermanentAddress *string
	Reason           *string
}

// MemberRepository defines persistence operations for member records.
type MemberRepository interface {
	// Insert stores a new member and returns its assigned identifier.
	Insert(ctx context.Context, m *domain.Member) (string, error)
	// FindByIdempotencyKey returns the member created under the given key,
	// or ErrMemberNotFound when the key has never been seen.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Member, error)
	// Search returns members matching filter, newest first.
	Search(ctx context.Context, filter SearchMembersFilter) ([]*domain.Member, error)
	// Update applies a sparse update to the member with the given id.
	// Returns ErrMemberNotFound when the id matches no document.
	Update(ctx context.Context, id string, update MemberUpdate) error
}
