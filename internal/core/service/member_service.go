package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

// searchLimit is the hard cap on search results. There is no pagination
// cursor; callers get at most this many rows, newest first.
const searchLimit = 100

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type MemberService struct {
	repo  ports.MemberRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewMemberService returns the MemberService backed by repo. dedup may be
// nil, in which case Idempotency-Key headers are ignored.
func NewMemberService(repo ports.MemberRepository, dedup DedupChecker, log zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, dedup: dedup, log: log}
}

// Register stores a new member record. When an idempotency key is provided
// and was already seen, the originally created record's id is returned and
// no new document is inserted.
func (s *MemberService) Register(ctx context.Context, input ports.RegisterMemberInput) (*ports.RegisterResult, error) {
	if input.IdempotencyKey != "" && s.dedup != nil {
		seen, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency check failed, processing anyway")
		} else if seen {
			existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
			if err == nil {
				s.log.Info().
					Str("idempotency_key", input.IdempotencyKey).
					Str("member_id", existing.ID).
					Msg("idempotent replay")
				return &ports.RegisterResult{ID: existing.ID, AlreadyExisted: true}, nil
			}
			if err != domain.ErrMemberNotFound {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	member := &domain.Member{
		FirstName:        input.FirstName,
		MiddleName:       input.MiddleName,
		LastName:         input.LastName,
		ParentsName:      input.ParentsName,
		Phone:            input.Phone,
		Email:            input.Email,
		DOB:              input.DOB,
		Aadhar:           input.Aadhar,
		Occupation:       input.Occupation,
		Organization:     input.Organization,
		CurrentAddress:   input.CurrentAddress,
		PermanentAddress: input.PermanentAddress,
		Interests:        input.Interests,
		Reason:           input.Reason,
		IdempotencyKey:   input.IdempotencyKey,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.repo.Insert(ctx, member)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert member")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Msg("failed to set idempotency key")
		}
	}

	s.log.Info().Str("member_id", id).Msg("member registered")
	return &ports.RegisterResult{ID: id}, nil
}

// Search returns at most searchLimit members matching input, ordered by
// creation time descending. Empty parameters are ignored; an empty input
// returns the most recent registrations.
func (s *MemberService) Search(ctx context.Context, input ports.SearchMembersInput) ([]*domain.Member, error) {
	filter := ports.SearchMembersFilter{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Limit:     searchLimit,
	}

	members, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("member search failed")
		return nil, err
	}
	return members, nil
}

// Update applies a sparse update to the member with the given id. Only the
// whitelisted contact fields can change; updatedAt is always refreshed.
func (s *MemberService) Update(ctx context.Context, id string, input ports.UpdateMemberInput) error {
	update := ports.MemberUpdate{
		Phone:            input.Phone,
		Email:            input.Email,
		CurrentAddress:   input.CurrentAddress,
		PermanentAddress: input.PermanentAddress,
		Reason:           input.Reason,
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		if err != domain.ErrMemberNotFound {
			s.log.Error().Err(err).Str("member_id", id).Msg("member update failed")
		}
		return err
	}

	s.log.Info().Str("member_id", id).Msg("member updated")
	return nil
}
