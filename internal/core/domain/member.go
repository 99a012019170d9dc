package domain

import (
	"errors"
	"time"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// InterestRatings holds the self-reported interest scores submitted with a
// registration. Scores are plain integers; no range is enforced.
type InterestRatings struct {
	Art        int `json:"art" bson:"art"`
	Sports     int `json:"sports" bson:"sports"`
	Music      int `json:"music" bson:"music"`
	Technology int `json:"technology" bson:"technology"`
	Literature int `json:"literature" bson:"literature"`
	Science    int `json:"science" bson:"science"`
}

// Member is the registration record stored in the members collection.
// Records are created by the public registration endpoint and never deleted;
// partial updates touch only the contact fields and refresh UpdatedAt.
type Member struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	MiddleName       string          `json:"middleName,omitempty"`
	LastName         string          `json:"lastName"`
	ParentsName      string          `json:"parentsName"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email"`
	DOB              time.Time       `json:"dob"`
	Aadhar           string          `json:"aadhar"`
	Occupation       string          `json:"occupation"`
	Organization     string          `json:"organization"`
	CurrentAddress   string          `json:"currentAddress"`
	PermanentAddress string          `json:"permanentAddress"`
	Interests        InterestRatings `json:"interests"`
	Reason           string          `json:"reason"`
	IdempotencyKey   string          `json:"-"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
