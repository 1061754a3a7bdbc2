package models

import "time"

// Raw aggregate rows scanned from report queries. Derived figures
// (percentages, rates, ratios) are computed by the metrics service so that
// division-by-zero handling lives in one place.

// DemographicCount is one GROUP BY bucket of the student demographics query.
type DemographicCount struct {
	Type     string `json:"type" db:"type"`
	Category string `json:"category" db:"category"`
	Count    int64  `json:"count" db:"count"`
}

// EmploymentCount aggregates alumni employment per college.
type EmploymentCount struct {
	College        string `json:"college" db:"college"`
	TotalAlumni    int64  `json:"totalAlumni" db:"total_alumni"`
	EmployedAlumni int64  `json:"employedAlumni" db:"employed_alumni"`
}

// CollegeGPA is the average GPA of one college's students.
type CollegeGPA struct {
	College    string   `json:"college" db:"college"`
	AverageGPA *float64 `json:"averageGpa" db:"average_gpa"`
}

// HeadCount pairs student and teacher counts per college.
type HeadCount struct {
	College  string `json:"college" db:"college"`
	Students int64  `json:"students" db:"students"`
	Teachers int64  `json:"teachers" db:"teachers"`
}

// CourseVacancy reports a course's enrollment against capacity.
type CourseVacancy struct {
	CourseID   int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	College    string `json:"college" db:"college"`
	Enrollment int    `json:"enrollment" db:"enrollment"`
	Capacity   int    `json:"capacity" db:"capacity"`
}

// BudgetTotals aggregates a college's allocation, donations and spending.
type BudgetTotals struct {
	College        string  `json:"college" db:"college"`
	TotalBudget    float64 `json:"totalBudget" db:"total_budget"`
	TotalDonations float64 `json:"totalDonations" db:"total_donations"`
	BudgetUsed     float64 `json:"budgetUsed" db:"budget_used"`
}

// SpendingPoint is one day of expense totals for a college.
type SpendingPoint struct {
	College  string    `json:"college" db:"college"`
	Period   time.Time `json:"period" db:"period"`
	Spending float64   `json:"spending" db:"spending"`
}

// CourseBudget aggregates allocation, donations and spending per course.
type CourseBudget struct {
	College    string  `json:"college" db:"college"`
	CourseName string  `json:"courseName" db:"course_name"`
	Allocated  float64 `json:"allocated" db:"allocated"`
	Donations  float64 `json:"donations" db:"donations"`
	Used       float64 `json:"used" db:"used"`
}

// DonationRow is one donation line item with its course joined in.
type DonationRow struct {
	College    string    `json:"college" db:"college"`
	CourseName *string   `json:"courseName,omitempty" db:"course_name"`
	Donor      string    `json:"donor" db:"donor"`
	Amount     float64   `json:"amount" db:"amount"`
	Date       time.Time `json:"date" db:"date"`
}

// CourseDonations totals donations per course.
type CourseDonations struct {
	College    string  `json:"college" db:"college"`
	CourseName string  `json:"courseName" db:"course_name"`
	Donations  float64 `json:"donations" db:"donations"`
}

// PlacementCount aggregates alumni placement, grouped by course or by year.
type PlacementCount struct {
	CourseName  string   `json:"courseName,omitempty" db:"course_name"`
	Year        *string  `json:"year,omitempty" db:"year"`
	AlumniCount int64    `json:"alumniCount" db:"alumni_count"`
	Placed      int64    `json:"placed" db:"placed"`
	AvgGPA      *float64 `json:"avgGpa,omitempty" db:"avg_gpa"`
}
