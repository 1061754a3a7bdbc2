package models

// Student extends a User with enrollment attributes. The advisor column
// references another user acting as advisor and may be NULL.
type Student struct {
	UserID        int64    `json:"userId" db:"user_id"`
	College       *string  `json:"college,omitempty" db:"college"`
	Year          *string  `json:"year,omitempty" db:"year"`
	GPA           *float64 `json:"gpa,omitempty" db:"gpa"`
	HousingStatus *string  `json:"housingStatus,omitempty" db:"housing_status"`
	Race          *string  `json:"race,omitempty" db:"race"`
	Income        *string  `json:"income,omitempty" db:"income"`
	Origin        *string  `json:"origin,omitempty" db:"origin"`
	Advisor       *int64   `json:"advisor,omitempty" db:"advisor"`

	// Joined from users when listing
	User *User `json:"user,omitempty"`
}

// ScheduleEntry is one course row of a student's class schedule.
type ScheduleEntry struct {
	CourseName string  `json:"courseName" db:"course_name"`
	CourseID   int64   `json:"courseId" db:"course_id"`
	Time       *string `json:"time,omitempty" db:"time"`
	RoomNumber *string `json:"roomNumber,omitempty" db:"room_number"`
	Enrollment int     `json:"enrollment" db:"enrollment"`
}

// ClubMembership links a student to a club.
type ClubMembership struct {
	ClubName  string `json:"clubName" db:"club_name"`
	StudentID int64  `json:"studentId" db:"student_id"`
}
