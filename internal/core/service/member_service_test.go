package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

type stubMemberRepo struct {
	inserted   []*domain.Member
	byKey      map[string]*domain.Member
	lastFilter ports.SearchMembersFilter
	searchOut  []*domain.Member
	searchErr  error
	updates    map[string]ports.MemberUpdate
	updateErr  error
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{
		byKey:   make(map[string]*domain.Member),
		updates: make(map[string]ports.MemberUpdate),
	}
}

func (r *stubMemberRepo) Insert(_ context.Context, m *domain.Member) (string, error) {
	clone := *m
	clone.ID = "member-1"
	r.inserted = append(r.inserted, &clone)
	if m.IdempotencyKey != "" {
		r.byKey[m.IdempotencyKey] = &clone
	}
	return clone.ID, nil
}

func (r *stubMemberRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Member, error) {
	if m, ok := r.byKey[key]; ok {
		return m, nil
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) Search(_ context.Context, filter ports.SearchMembersFilter) ([]*domain.Member, error) {
	r.lastFilter = filter
	return r.searchOut, r.searchErr
}

func (r *stubMemberRepo) Update(_ context.Context, id string, update ports.MemberUpdate) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates[id] = update
	return nil
}

type stubDedup struct {
	seen   map[string]bool
	marked []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key string) error {
	d.seen[key] = true
	d.marked = append(d.marked, key)
	return nil
}

func registrationInput() ports.RegisterMemberInput {
	return ports.RegisterMemberInput{
		FirstName:        "Asha",
		LastName:         "Verma",
		ParentsName:      "Ravi Verma",
		Phone:            "9876543210",
		Email:            "asha@example.com",
		DOB:              time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		Aadhar:           "123412341234",
		Occupation:       "student",
		Organization:     "Delhi University",
		CurrentAddress:   "12 MG Road, Delhi",
		PermanentAddress: "12 MG Road, Delhi",
		Interests:        domain.InterestRatings{Art: 3, Sports: 2, Music: 5, Technology: 4, Literature: 1, Science: 5},
		Reason:           "community work",
	}
}

func TestMemberService_Register_Success(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, newStubDedup(), zerolog.Nop())

	result, err := svc.Register(context.Background(), registrationInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.ID != "member-1" {
		t.Fatalf("unexpected id: %s", result.ID)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh registration reported as replay")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}

	m := repo.inserted[0]
	if m.Email != "asha@example.com" || m.Interests.Music != 5 {
		t.Fatalf("input not mapped onto member: %+v", m)
	}
	if m.CreatedAt.IsZero() || !m.CreatedAt.Equal(m.UpdatedAt) {
		t.Fatalf("timestamps not set consistently: %v / %v", m.CreatedAt, m.UpdatedAt)
	}
	if m.CreatedAt.Location() != time.UTC {
		t.Fatalf("createdAt not UTC")
	}
}

func TestMemberService_Register_IdempotentReplay(t *testing.T) {
	repo := newStubMemberRepo()
	dedup := newStubDedup()
	svc := NewMemberService(repo, dedup, zerolog.Nop())

	input := registrationInput()
	input.IdempotencyKey = "key-1"

	first, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "key-1" {
		t.Fatalf("idempotency key not marked: %v", dedup.marked)
	}

	second, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("replay not detected")
	}
	if second.ID != first.ID {
		t.Fatalf("replay returned different id: %s vs %s", second.ID, first.ID)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("replay inserted a duplicate, %d inserts", len(repo.inserted))
	}
}

func TestMemberService_Register_NilDedup(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, nil, zerolog.Nop())

	input := registrationInput()
	input.IdempotencyKey = "ignored"
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("register with nil dedup failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
}

func TestMemberService_Search_TrimsAndCaps(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, newStubDedup(), zerolog.Nop())

	_, err := svc.Search(context.Background(), ports.SearchMembersInput{
		FirstName: "  as ",
		Email:     " ASHA@example.com ",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastFilter.FirstName != "as" {
		t.Fatalf("first name not trimmed: %q", repo.lastFilter.FirstName)
	}
	if repo.lastFilter.Email != "ASHA@example.com" {
		t.Fatalf("email not trimmed: %q", repo.lastFilter.Email)
	}
	if repo.lastFilter.Limit != 100 {
		t.Fatalf("expected limit 100, got %d", repo.lastFilter.Limit)
	}
}

func TestMemberService_Update_PassesSparseFields(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, newStubDedup(), zerolog.Nop())

	phone := "1112223333"
	err := svc.Update(context.Background(), "member-1", ports.UpdateMemberInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	update, ok := repo.updates["member-1"]
	if !ok {
		t.Fatalf("update not applied")
	}
	if update.Phone == nil || *update.Phone != "1112223333" {
		t.Fatalf("phone not passed through: %v", update.Phone)
	}
	if update.Email != nil || update.Reason != nil {
		t.Fatalf("unset fields should stay nil")
	}
}

func TestMemberService_Update_NotFound(t *testing.T) {
	repo := newStubMemberRepo()
	repo.updateErr = domain.ErrMemberNotFound
	svc := NewMemberService(repo, newStubDedup(), zerolog.Nop())

	if err := svc.Update(context.Background(), "missing", ports.UpdateMemberInput{}); err != domain.ErrMemberNotFound {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
