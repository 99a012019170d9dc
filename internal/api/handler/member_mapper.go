package handler

import (
	"time"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04:05"
)

// --- Request → Service input ---

func toRegisterInput(req registerMemberRequest, idempotencyKey string) (ports.RegisterMemberInput, error) {
	dob, err := time.Parse(dateFormat, req.DOB)
	if err != nil {
		return ports.RegisterMemberInput{}, err
	}

	return ports.RegisterMemberInput{
		FirstName:        req.FirstName,
		MiddleName:       req.MiddleName,
		LastName:         req.LastName,
		ParentsName:      req.ParentsName,
		Phone:            req.Phone,
		Email:            req.Email,
		DOB:              dob,
		Aadhar:           req.Aadhar,
		Occupation:       req.Occupation,
		Organization:     req.Organization,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		Interests: domain.InterestRatings{
			Art:        req.Art,
			Sports:     req.Sports,
			Music:      req.Music,
			Technology: req.Technology,
			Literature: req.Literature,
			Science:    req.Science,
		},
		Reason:         req.Reason,
		IdempotencyKey: idempotencyKey,
	}, nil
}

func toUpdateInput(req updateMemberRequest) ports.UpdateMemberInput {
	return ports.UpdateMemberInput{
		Phone:            req.Phone,
		Email:            req.Email,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		Reason:           req.Reason,
	}
}

// --- Domain → HTTP response ---

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:               m.ID,
		FirstName:        m.FirstName,
		MiddleName:       m.MiddleName,
		LastName:         m.LastName,
		ParentsName:      m.ParentsName,
		Phone:            m.Phone,
		Email:            m.Email,
		DOB:              m.DOB.UTC().Format(dateFormat),
		Aadhar:           m.Aadhar,
		Occupation:       m.Occupation,
		Organization:     m.Organization,
		CurrentAddress:   m.CurrentAddress,
		PermanentAddress: m.PermanentAddress,
		Art:              m.Interests.Art,
		Sports:           m.Interests.Sports,
		Music:            m.Interests.Music,
		Technology:       m.Interests.Technology,
		Literature:       m.Interests.Literature,
		Science:          m.Interests.Science,
		Reason:           m.Reason,
		CreatedAt:        m.CreatedAt.UTC().Format(timestampFormat),
		UpdatedAt:        m.UpdatedAt.UTC().Format(timestampFormat),
	}
}

func toMemberListResponse(members []*domain.Member) []memberResponse {
	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	return out
}
