package dto

// StudentFilter holds the optional filters of the student listing. Absent
// filters impose no constraint.
type StudentFilter struct {
	College string `form:"college"`
	Year    string `form:"year"`
}

// CreateStudentRequest carries a new student record. The user row must
// already exist; optional fields insert as NULL.
type CreateStudentRequest struct {
	UserID        int64   `json:"userId" binding:"required,gt=0"`
	College       *string `json:"college"`
	Year          *string `json:"year"`
	HousingStatus *string `json:"housingStatus"`
	Race          *string `json:"race"`
	Income        *string `json:"income"`
	Origin        *string `json:"origin"`
	Advisor       *int64  `json:"advisor"`
}

// CreateStudentResponse returns the key of the created record
type CreateStudentResponse struct {
	UserID int64 `json:"userId"`
}

// StudentRow is a student joined with its user identity for listings
type StudentRow struct {
	UserID        int64    `json:"userId"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	College       *string  `json:"college"`
	Year          *string  `json:"year"`
	GPA           *float64 `json:"gpa"`
	HousingStatus *string  `json:"housingStatus"`
	Race          *string  `json:"race"`
	Income        *string  `json:"income"`
	Origin        *string  `json:"origin"`
	Advisor       *int64   `json:"advisor"`
}

// GPAResponse is the single-value GPA lookup payload. GPA is null when the
// student has no row or no recorded GPA.
type GPAResponse struct {
	GPA *float64 `json:"gpa"`
}

// AdvisorEmailResponse is the single-value advisor lookup payload
type AdvisorEmailResponse struct {
	AdvisorEmail *string `json:"advisorEmail"`
}
