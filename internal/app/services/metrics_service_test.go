package services

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
)

// mockMetricsStore returns canned aggregate rows.
type mockMetricsStore struct {
	demographics []models.DemographicCount
	employment   []models.EmploymentCount
	headCounts   []models.HeadCount
	vacancies    []models.CourseVacancy
	budgets      []models.BudgetTotals
	courseBudget []models.CourseBudget
	deanCollege  string
	deanErr      error
	total        int64
	placed       int64
}

func (m *mockMetricsStore) DemographicCounts(ctx context.Context) ([]models.DemographicCount, error) {
	return m.demographics, nil
}
func (m *mockMetricsStore) EmploymentCounts(ctx context.Context) ([]models.EmploymentCount, error) {
	return m.employment, nil
}
func (m *mockMetricsStore) CollegeGPAs(ctx context.Context) ([]models.CollegeGPA, error) {
	return nil, nil
}
func (m *mockMetricsStore) HeadCounts(ctx context.Context) ([]models.HeadCount, error) {
	return m.headCounts, nil
}
func (m *mockMetricsStore) CourseVacancies(ctx context.Context) ([]models.CourseVacancy, error) {
	return m.vacancies, nil
}
func (m *mockMetricsStore) BudgetTotals(ctx context.Context, college *string) ([]models.BudgetTotals, error) {
	return m.budgets, nil
}
func (m *mockMetricsStore) SpendingTrend(ctx context.Context, college *string) ([]models.SpendingPoint, error) {
	return nil, nil
}
func (m *mockMetricsStore) CourseBudgets(ctx context.Context, college *string) ([]models.CourseBudget, error) {
	return m.courseBudget, nil
}
func (m *mockMetricsStore) Donations(ctx context.Context, college *string, limit uint64) ([]models.DonationRow, error) {
	return nil, nil
}
func (m *mockMetricsStore) CourseDonations(ctx context.Context, college *string) ([]models.CourseDonations, error) {
	return nil, nil
}
func (m *mockMetricsStore) GetCollegeByDean(ctx context.Context, deanID int64) (string, error) {
	return m.deanCollege, m.deanErr
}
func (m *mockMetricsStore) PlacementTotals(ctx context.Context, college *string) (int64, int64, error) {
	return m.total, m.placed, nil
}
func (m *mockMetricsStore) PlacementByCourse(ctx context.Context, college *string) ([]models.PlacementCount, error) {
	return nil, nil
}
func (m *mockMetricsStore) PlacementByYear(ctx context.Context, college *string) ([]models.PlacementCount, error) {
	return nil, nil
}

func newMetricsService(store *mockMetricsStore) MetricsService {
	return NewMetricsService(store, zerolog.Nop())
}

func TestGetDemographicsPercentagesSumTo100(t *testing.T) {
	store := &mockMetricsStore{demographics: []models.DemographicCount{
		{Type: "race", Category: "A", Count: 1},
		{Type: "race", Category: "B", Count: 1},
		{Type: "race", Category: "C", Count: 1},
		{Type: "housing", Category: "on-campus", Count: 3},
	}}

	rows, err := newMetricsService(store).GetDemographics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	sums := map[string]float64{}
	for _, row := range rows {
		sums[row.Type] += row.Percentage
	}
	for typ, sum := range sums {
		if math.Abs(sum-100) > 0.011 {
			t.Errorf("percentages for %s sum to %v, want 100 (+-0.01)", typ, sum)
		}
	}

	// 1/3 rounds to 33.33, not a longer float tail.
	if rows[0].Percentage != 33.33 {
		t.Errorf("expected 33.33, got %v", rows[0].Percentage)
	}
}

func TestGetStudentTeacherRatiosNullOnZeroTeachers(t *testing.T) {
	store := &mockMetricsStore{headCounts: []models.HeadCount{
		{College: "Engineering", Students: 90, Teachers: 8},
		{College: "Arts", Students: 25, Teachers: 0},
	}}

	rows, err := newMetricsService(store).GetStudentTeacherRatios(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].StudentTeacherRatio == nil || *rows[0].StudentTeacherRatio != 11.25 {
		t.Errorf("expected ratio 11.25, got %v", rows[0].StudentTeacherRatio)
	}
	if rows[1].StudentTeacherRatio != nil {
		t.Errorf("expected null ratio for college without teachers, got %v", *rows[1].StudentTeacherRatio)
	}
}

func TestGetCourseVacanciesFlagsOpenSeats(t *testing.T) {
	store := &mockMetricsStore{vacancies: []models.CourseVacancy{
		{CourseID: 1, Name: "Calculus", College: "Science", Enrollment: 29, Capacity: 30},
		{CourseID: 2, Name: "Physics", College: "Science", Enrollment: 30, Capacity: 30},
	}}

	rows, err := newMetricsService(store).GetCourseVacancies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rows[0].IsVacant {
		t.Error("expected course below capacity to be vacant")
	}
	if rows[1].IsVacant {
		t.Error("expected full course to not be vacant")
	}
}

func TestGetBudgetSummaryRemaining(t *testing.T) {
	store := &mockMetricsStore{budgets: []models.BudgetTotals{
		{College: "Engineering", TotalBudget: 1000, TotalDonations: 250.555, BudgetUsed: 400},
		{College: "Arts", TotalBudget: 500, TotalDonations: 0, BudgetUsed: 100},
	}}

	summary, err := newMetricsService(store).GetBudgetSummary(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalBudget != 1500 {
		t.Errorf("expected totalBudget 1500, got %v", summary.TotalBudget)
	}
	if summary.TotalDonations != 250.56 {
		t.Errorf("expected totalDonations 250.56, got %v", summary.TotalDonations)
	}
	if summary.Remaining != 1250.56 {
		t.Errorf("expected remaining 1250.56, got %v", summary.Remaining)
	}
}

func TestGetCourseBudgetsNullUsedPctWithoutFunds(t *testing.T) {
	store := &mockMetricsStore{courseBudget: []models.CourseBudget{
		{College: "Science", CourseName: "Chemistry", Allocated: 300, Donations: 100, Used: 100},
		{College: "Science", CourseName: "Seminar", Allocated: 0, Donations: 0, Used: 0},
	}}

	rows, err := newMetricsService(store).GetCourseBudgets(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].UsedPct == nil || *rows[0].UsedPct != 25 {
		t.Errorf("expected usedPct 25, got %v", rows[0].UsedPct)
	}
	if rows[0].Total != 400 {
		t.Errorf("expected total 400, got %v", rows[0].Total)
	}
	if rows[1].UsedPct != nil {
		t.Errorf("expected null usedPct for unfunded course, got %v", *rows[1].UsedPct)
	}
}

func TestGetPlacementSummaryZeroAlumni(t *testing.T) {
	summary, err := newMetricsService(&mockMetricsStore{}).GetPlacementSummary(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PlacementRate != 0 {
		t.Errorf("expected rate 0 with no alumni, got %v", summary.PlacementRate)
	}
}

func TestGetAlumniEmploymentRate(t *testing.T) {
	store := &mockMetricsStore{employment: []models.EmploymentCount{
		{College: "Engineering", TotalAlumni: 3, EmployedAlumni: 2},
	}}

	rows, err := newMetricsService(store).GetAlumniEmployment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].EmploymentRate != 66.67 {
		t.Errorf("expected employmentRate 66.67, got %v", rows[0].EmploymentRate)
	}
}
