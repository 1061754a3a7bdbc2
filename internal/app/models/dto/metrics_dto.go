package dto

import "time"

// Report payloads returned by the metrics endpoints. Percentages and rates
// are rounded to two decimals; ratios are null when the denominator is zero.

// DemographicRow is one category bucket with its share of the whole type group.
type DemographicRow struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	NumStudents int64   `json:"numStudents"`
	Percentage  float64 `json:"percentage"`
}

// EmploymentRow reports alumni employment per college.
type EmploymentRow struct {
	College        string  `json:"college"`
	TotalAlumni    int64   `json:"totalAlumni"`
	EmployedAlumni int64   `json:"employedAlumni"`
	EmploymentRate float64 `json:"employmentRate"`
}

// RatioRow reports students per teacher for one college. The ratio is null
// when the college has no teachers.
type RatioRow struct {
	College             string   `json:"college"`
	StudentTeacherRatio *float64 `json:"studentTeacherRatio"`
}

// VacancyRow reports a course's enrollment against capacity.
type VacancyRow struct {
	CourseID   int64  `json:"id"`
	Name       string `json:"name"`
	College    string `json:"college"`
	Enrollment int    `json:"enrollment"`
	Capacity   int    `json:"capacity"`
	IsVacant   bool   `json:"isVacant"`
}

// BudgetSummaryRow is the headline budget view of one college.
type BudgetSummaryRow struct {
	College        string  `json:"college,omitempty"`
	TotalBudget    float64 `json:"totalBudget"`
	TotalDonations float64 `json:"totalDonations"`
	BudgetUsed     float64 `json:"budgetUsed"`
	Remaining      float64 `json:"remaining"`
}

// SpendingTrendRow is one point of the spending-over-time series.
type SpendingTrendRow struct {
	College  string    `json:"college,omitempty"`
	Period   time.Time `json:"period"`
	Spending float64   `json:"spending"`
}

// CourseBudgetRow is the per-course financial breakdown. UsedPct is null
// when the course has no funds at all.
type CourseBudgetRow struct {
	College    string   `json:"college,omitempty"`
	CourseName string   `json:"courseName"`
	Allocated  float64  `json:"allocated"`
	Donations  float64  `json:"donations"`
	Total      float64  `json:"total"`
	Used       float64  `json:"used"`
	UsedPct    *float64 `json:"usedPct"`
}

// DeanCollegeResponse resolves a dean to their college.
type DeanCollegeResponse struct {
	CollegeName string `json:"collegeName"`
}

// PlacementSummaryRow is the headline alumni placement view.
type PlacementSummaryRow struct {
	TotalAlumni   int64   `json:"totalAlumni"`
	Placed        int64   `json:"placed"`
	PlacementRate float64 `json:"placementRate"`
}

// CoursePlacementRow reports placement per course.
type CoursePlacementRow struct {
	CourseName    string   `json:"courseName"`
	AlumniCount   int64    `json:"alumniCount"`
	Placed        int64    `json:"placed"`
	PlacementRate float64  `json:"placementRate"`
	AvgGPA        *float64 `json:"avgGpa"`
}

// YearPlacementRow reports placement per student year.
type YearPlacementRow struct {
	Year          string  `json:"year"`
	AlumniCount   int64   `json:"alumniCount"`
	Placed        int64   `json:"placed"`
	PlacementRate float64 `json:"placementRate"`
}
