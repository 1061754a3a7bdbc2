package models

import "time"

// College is keyed by name; dean references a user.
type College struct {
	CollegeName string   `json:"collegeName" db:"college_name"`
	Dean        *int64   `json:"dean,omitempty" db:"dean"`
	Budget      *float64 `json:"budget,omitempty" db:"budget"`
	Status      bool     `json:"status" db:"status"`
}

// Course belongs to a college and tracks enrollment against capacity.
type Course struct {
	ID         int64    `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	College    string   `json:"college" db:"college"`
	Time       *string  `json:"time,omitempty" db:"time"`
	RoomNumber *string  `json:"roomNumber,omitempty" db:"room_number"`
	Enrollment int      `json:"enrollment" db:"enrollment"`
	Capacity   int      `json:"capacity" db:"capacity"`
	Budget     *float64 `json:"budget,omitempty" db:"budget"`
}

// SchoolRanking is an externally sourced ranking per school name.
type SchoolRanking struct {
	SchoolName string `json:"schoolName" db:"school_name"`
	Ranking    int    `json:"ranking" db:"ranking"`
}

// Donation is a time-stamped budget line item credited to a college and,
// optionally, a course.
type Donation struct {
	ID       int64     `json:"id" db:"id"`
	College  string    `json:"college" db:"college"`
	CourseID *int64    `json:"courseId,omitempty" db:"course_id"`
	Donor    string    `json:"donor" db:"donor"`
	Amount   float64   `json:"amount" db:"amount"`
	Date     time.Time `json:"date" db:"date"`
}

// Expense is a time-stamped budget line item debited from a college and,
// optionally, a course.
type Expense struct {
	ID       int64     `json:"id" db:"id"`
	College  string    `json:"college" db:"college"`
	CourseID *int64    `json:"courseId,omitempty" db:"course_id"`
	Amount   float64   `json:"amount" db:"amount"`
	Date     time.Time `json:"date" db:"date"`
}
