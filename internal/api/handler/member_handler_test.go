package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

type stubMemberService struct {
	registerFn func(ctx context.Context, input ports.RegisterMemberInput) (*ports.RegisterResult, error)
	searchFn   func(ctx context.Context, input ports.SearchMembersInput) ([]*domain.Member, error)
	updateFn   func(ctx context.Context, id string, input ports.UpdateMemberInput) error
}

func (s *stubMemberService) Register(ctx context.Context, input ports.RegisterMemberInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubMemberService) Search(ctx context.Context, input ports.SearchMembersInput) ([]*domain.Member, error) {
	return s.searchFn(ctx, input)
}

func (s *stubMemberService) Update(ctx context.Context, id string, input ports.UpdateMemberInput) error {
	return s.updateFn(ctx, id, input)
}

const validRegistration = `{
	"firstName": "Asha",
	"middleName": "K",
	"lastName": "Verma",
	"parentsName": "Ravi Verma",
	"phone": "9876543210",
	"email": "asha@example.com",
	"dob": "1998-04-12",
	"aadhar": "123412341234",
	"occupation": "student",
	"organization": "Delhi University",
	"currentAddress": "12 MG Road, Delhi",
	"permanentAddress": "12 MG Road, Delhi",
	"art": 3,
	"sports": 2,
	"music": 5,
	"technology": 4,
	"literature": 1,
	"science": 5,
	"reason": "community work"
}`

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMemberHandler_Register_Success(t *testing.T) {
	var got ports.RegisterMemberInput
	stub := &stubMemberService{
		registerFn: func(_ context.Context, input ports.RegisterMemberInput) (*ports.RegisterResult, error) {
			got = input
			return &ports.RegisterResult{ID: "65f1c0ffee"}, nil
		},
	}
	h := NewMemberHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/register", validRegistration)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Registration successful!" || resp["id"] != "65f1c0ffee" {
		t.Fatalf("unexpected response: %v", resp)
	}

	if got.FirstName != "Asha" || got.Interests.Science != 5 {
		t.Fatalf("input not mapped: %+v", got)
	}
	wantDOB := time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC)
	if !got.DOB.Equal(wantDOB) {
		t.Fatalf("dob not parsed: %v", got.DOB)
	}
}

func TestMemberHandler_Register_MissingField(t *testing.T) {
	stub := &stubMemberService{
		registerFn: func(context.Context, ports.RegisterMemberInput) (*ports.RegisterResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewMemberHandler(stub)

	body := strings.Replace(validRegistration, `"lastName": "Verma",`, "", 1)
	c, _ := newTestContext(t, http.MethodPost, "/api/register", body)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "lastName is required") {
		t.Fatalf("error does not name the field: %v", he.Message)
	}
}

func TestMemberHandler_Register_BadDOB(t *testing.T) {
	stub := &stubMemberService{
		registerFn: func(context.Context, ports.RegisterMemberInput) (*ports.RegisterResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewMemberHandler(stub)

	body := strings.Replace(validRegistration, "1998-04-12", "12/04/1998", 1)
	c, _ := newTestContext(t, http.MethodPost, "/api/register", body)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed dob, got %d", he.Code)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "dob") {
		t.Fatalf("error does not mention dob: %v", he.Message)
	}
}

func TestMemberHandler_Register_ZeroRatingRejected(t *testing.T) {
	stub := &stubMemberService{
		registerFn: func(context.Context, ports.RegisterMemberInput) (*ports.RegisterResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewMemberHandler(stub)

	body := strings.Replace(validRegistration, `"art": 3`, `"art": 0`, 1)
	c, _ := newTestContext(t, http.MethodPost, "/api/register", body)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero rating, got %v", err)
	}
}

func TestMemberHandler_Register_IdempotencyKeyForwarded(t *testing.T) {
	var got ports.RegisterMemberInput
	stub := &stubMemberService{
		registerFn: func(_ context.Context, input ports.RegisterMemberInput) (*ports.RegisterResult, error) {
			got = input
			return &ports.RegisterResult{ID: "abc", AlreadyExisted: true}, nil
		},
	}
	h := NewMemberHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/register", validRegistration)
	c.Request().Header.Set("Idempotency-Key", "key-1")

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.IdempotencyKey != "key-1" {
		t.Fatalf("idempotency key not forwarded: %q", got.IdempotencyKey)
	}
	// A replay still answers 201 with the original id.
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on replay, got %d", rec.Code)
	}
}

func TestMemberHandler_Search_SerializesRecords(t *testing.T) {
	stub := &stubMemberService{
		searchFn: func(_ context.Context, input ports.SearchMembersInput) ([]*domain.Member, error) {
			if input.FirstName != "as" || input.Email != "asha@example.com" {
				t.Fatalf("query params not forwarded: %+v", input)
			}
			return []*domain.Member{{
				ID:        "65f1c0ffee",
				FirstName: "Asha",
				LastName:  "Verma",
				Email:     "asha@example.com",
				DOB:       time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
				Interests: domain.InterestRatings{Art: 3},
				CreatedAt: time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
				UpdatedAt: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	h := NewMemberHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/members?searchFName=as&searchEmail=asha@example.com", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp))
	}

	rec0 := resp[0]
	if rec0["_id"] != "65f1c0ffee" {
		t.Fatalf("id not stringified under _id: %v", rec0["_id"])
	}
	if rec0["dob"] != "1998-04-12" {
		t.Fatalf("dob not formatted: %v", rec0["dob"])
	}
	if rec0["createdAt"] != "2026-08-30 10:30:00" {
		t.Fatalf("createdAt not formatted: %v", rec0["createdAt"])
	}
	if rec0["updatedAt"] != "2026-08-30 11:00:00" {
		t.Fatalf("updatedAt not formatted: %v", rec0["updatedAt"])
	}
}

func TestMemberHandler_Search_EmptyResult(t *testing.T) {
	stub := &stubMemberService{
		searchFn: func(context.Context, ports.SearchMembersInput) ([]*domain.Member, error) {
			return nil, nil
		},
	}
	h := NewMemberHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/members?searchEmail=nobody@example.com", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestMemberHandler_Update_Success(t *testing.T) {
	var gotID string
	var gotInput ports.UpdateMemberInput
	stub := &stubMemberService{
		updateFn: func(_ context.Context, id string, input ports.UpdateMemberInput) error {
			gotID = id
			gotInput = input
			return nil
		},
	}
	h := NewMemberHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/members/65f1c0ffee", `{"phone":"1112223333"}`)
	c.SetParamNames("id")
	c.SetParamValues("65f1c0ffee")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "65f1c0ffee" {
		t.Fatalf("id not forwarded: %s", gotID)
	}
	if gotInput.Phone == nil || *gotInput.Phone != "1112223333" {
		t.Fatalf("phone not forwarded: %v", gotInput.Phone)
	}
	if gotInput.Email != nil || gotInput.CurrentAddress != nil {
		t.Fatalf("absent fields must stay nil")
	}
}

func TestMemberHandler_Update_NotFound(t *testing.T) {
	stub := &stubMemberService{
		updateFn: func(context.Context, string, ports.UpdateMemberInput) error {
			return domain.ErrMemberNotFound
		},
	}
	h := NewMemberHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/members/missing", `{"phone":"1"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
