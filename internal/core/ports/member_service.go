package ports

import (
	"context"
	"time"

	"github.com/sahayog/membership-system/internal/core/domain"
)

// RegisterMemberInput carries all data needed to register a new member.
// DOB is already parsed; the transport layer validates the wire format.
type RegisterMemberInput struct {
	FirstName        string
	MiddleName       string
	LastName         string
	ParentsName      string
	Phone            string
	Email            string
	DOB              time.Time
	Aadhar           string
	Occupation       string
	Organization     string
	CurrentAddress   string
	PermanentAddress string
	Interests        domain.InterestRatings
	Reason           string
	// IdempotencyKey is optional; a replayed key returns the originally
	// created record instead of inserting a duplicate.
	IdempotencyKey string
}

// RegisterResult is returned by the service after a registration.
type RegisterResult struct {
	ID string
	// AlreadyExisted is true when the Idempotency-Key matched an earlier
	// submission and no new document was inserted.
	AlreadyExisted bool
}

// SearchMembersInput carries the raw search parameters from the query string.
type SearchMembersInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// UpdateMemberInput is the partial payload accepted by the update endpoint.
// Nil fields mean "leave unchanged".
type UpdateMemberInput struct {
	Phone            *string
	Email            *string
	CurrentAddress   *string
	PermanentAddress *string
	Reason           *string
}

// MemberService defines the use-case operations on member records.
type MemberService interface {
	Register(ctx context.Context, input RegisterMemberInput) (*RegisterResult, error)
	Search(ctx context.Context, input SearchMembersInput) ([]*domain.Member, error)
	Update(ctx context.Context, id string, input UpdateMemberInput) error
}
