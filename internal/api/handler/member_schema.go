package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for plain confirmation messages.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// registerMemberRequest is the registration payload. Presence is the only
// check on most fields, matching the submission contract; dob additionally
// has to be a calendar date. Note the interest ratings carry `required`, so
// a zero rating is rejected as missing.
type registerMemberRequest struct {
	FirstName        string `json:"firstName"        validate:"required"`
	MiddleName       string `json:"middleName"`
	LastName         string `json:"lastName"         validate:"required"`
	ParentsName      string `json:"parentsName"      validate:"required"`
	Phone            string `json:"phone"            validate:"required"`
	Email            string `json:"email"            validate:"required"`
	DOB              string `json:"dob"              validate:"required,datetime=2006-01-02"`
	Aadhar           string `json:"aadhar"           validate:"required"`
	Occupation       string `json:"occupation"       validate:"required"`
	Organization     string `json:"organization"     validate:"required"`
	CurrentAddress   string `json:"currentAddress"   validate:"required"`
	PermanentAddress string `json:"permanentAddress" validate:"required"`
	Art              int    `json:"art"              validate:"required"`
	Sports           int    `json:"sports"           validate:"required"`
	Music            int    `json:"music"            validate:"required"`
	Technology       int    `json:"technology"       validate:"required"`
	Literature       int    `json:"literature"       validate:"required"`
	Science          int    `json:"science"          validate:"required"`
	Reason           string `json:"reason"           validate:"required"`
}

// updateMemberRequest is the partial-update payload. Only the whitelisted
// contact fields are accepted; absent or null fields stay untouched.
type updateMemberRequest struct {
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	CurrentAddress   *string `json:"currentAddress"`
	PermanentAddress *string `json:"permanentAddress"`
	Reason           *string `json:"reason"`
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

type registerMemberResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// memberResponse is a serialized member record. The id is the stringified
// object id under the original "_id" key; dob is YYYY-MM-DD and the
// timestamps are YYYY-MM-DD HH:MM:SS, the formats the existing consumers
// expect.
type memberResponse struct {
	ID               string `json:"_id"`
	FirstName        string `json:"firstName"`
	MiddleName       string `json:"middleName"`
	LastName         string `json:"lastName"`
	ParentsName      string `json:"parentsName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	DOB              string `json:"dob"`
	Aadhar           string `json:"aadhar"`
	Occupation       string `json:"occupation"`
	Organization     string `json:"organization"`
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	Art              int    `json:"art"`
	Sports           int    `json:"sports"`
	Music            int    `json:"music"`
	Technology       int    `json:"technology"`
	Literature       int    `json:"literature"`
	Science          int    `json:"science"`
	Reason           string `json:"reason"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type adminLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
