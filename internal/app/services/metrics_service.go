package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/helpers"
)

// metricsStore is the slice of the metrics repository the service needs.
type metricsStore interface {
	DemographicCounts(ctx context.Context) ([]models.DemographicCount, error)
	EmploymentCounts(ctx context.Context) ([]models.EmploymentCount, error)
	CollegeGPAs(ctx context.Context) ([]models.CollegeGPA, error)
	HeadCounts(ctx context.Context) ([]models.HeadCount, error)
	CourseVacancies(ctx context.Context) ([]models.CourseVacancy, error)
	BudgetTotals(ctx context.Context, college *string) ([]models.BudgetTotals, error)
	SpendingTrend(ctx context.Context, college *string) ([]models.SpendingPoint, error)
	CourseBudgets(ctx context.Context, college *string) ([]models.CourseBudget, error)
	Donations(ctx context.Context, college *string, limit uint64) ([]models.DonationRow, error)
	CourseDonations(ctx context.Context, college *string) ([]models.CourseDonations, error)
	GetCollegeByDean(ctx context.Context, deanID int64) (string, error)
	PlacementTotals(ctx context.Context, college *string) (total, placed int64, err error)
	PlacementByCourse(ctx context.Context, college *string) ([]models.PlacementCount, error)
	PlacementByYear(ctx context.Context, college *string) ([]models.PlacementCount, error)
}

// MetricsService defines the interface for report operations. All derived
// figures are computed here from raw counts: percentages and rates round to
// two decimals, ratios are null when the denominator is zero.
type MetricsService interface {
	GetDemographics(ctx context.Context) ([]dto.DemographicRow, error)
	GetAlumniEmployment(ctx context.Context) ([]dto.EmploymentRow, error)
	GetCollegeGPAs(ctx context.Context) ([]models.CollegeGPA, error)
	GetStudentTeacherRatios(ctx context.Context) ([]dto.RatioRow, error)
	GetCourseVacancies(ctx context.Context) ([]dto.VacancyRow, error)
	GetBudgetSummary(ctx context.Context, college *string) (*dto.BudgetSummaryRow, error)
	GetCollegeBudgets(ctx context.Context) ([]dto.BudgetSummaryRow, error)
	GetSpendingTrend(ctx context.Context, college *string) ([]dto.SpendingTrendRow, error)
	GetCourseBudgets(ctx context.Context, college *string) ([]dto.CourseBudgetRow, error)
	GetDonations(ctx context.Context, college *string, limit uint64) ([]models.DonationRow, error)
	GetCourseDonations(ctx context.Context, college *string) ([]models.CourseDonations, error)
	GetDeanCollege(ctx context.Context, deanID int64) (*dto.DeanCollegeResponse, error)
	GetPlacementSummary(ctx context.Context, college *string) (*dto.PlacementSummaryRow, error)
	GetPlacementByCourse(ctx context.Context, college *string) ([]dto.CoursePlacementRow, error)
	GetPlacementByYear(ctx context.Context, college *string) ([]dto.YearPlacementRow, error)
}

// metricsServiceImpl implements MetricsService
type metricsServiceImpl struct {
	metrics metricsStore
	logger  zerolog.Logger
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(metrics metricsStore, logger zerolog.Logger) MetricsService {
	return &metricsServiceImpl{
		metrics: metrics,
		logger:  logger,
	}
}

// GetDemographics buckets students per demographic attribute and computes
// each category's share within its attribute group.
func (s *metricsServiceImpl) GetDemographics(ctx context.Context) ([]dto.DemographicRow, error) {
	counts, err := s.metrics.DemographicCounts(ctx)
	if err != nil {
		return nil, err
	}

	groupTotals := map[string]int64{}
	for _, count := range counts {
		groupTotals[count.Type] += count.Count
	}

	rows := make([]dto.DemographicRow, 0, len(counts))
	for _, count := range counts {
		row := dto.DemographicRow{
			Type:        count.Type,
			Category:    count.Category,
			NumStudents: count.Count,
		}
		if total := groupTotals[count.Type]; total > 0 {
			row.Percentage = helpers.Round2(float64(count.Count) / float64(total) * 100)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetAlumniEmployment reports the alumni employment rate per college.
func (s *metricsServiceImpl) GetAlumniEmployment(ctx context.Context) ([]dto.EmploymentRow, error) {
	counts, err := s.metrics.EmploymentCounts(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.EmploymentRow, 0, len(counts))
	for _, count := range counts {
		row := dto.EmploymentRow{
			College:        count.College,
			TotalAlumni:    count.TotalAlumni,
			EmployedAlumni: count.EmployedAlumni,
		}
		if count.TotalAlumni > 0 {
			row.EmploymentRate = helpers.Round2(float64(count.EmployedAlumni) / float64(count.TotalAlumni) * 100)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetCollegeGPAs averages student GPA per college, rounded to two decimals.
func (s *metricsServiceImpl) GetCollegeGPAs(ctx context.Context) ([]models.CollegeGPA, error) {
	gpas, err := s.metrics.CollegeGPAs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range gpas {
		if gpas[i].AverageGPA != nil {
			rounded := helpers.Round2(*gpas[i].AverageGPA)
			gpas[i].AverageGPA = &rounded
		}
	}

	return gpas, nil
}

// GetStudentTeacherRatios reports students per teacher for each college.
// Colleges without teachers report a null ratio rather than dividing by
// zero.
func (s *metricsServiceImpl) GetStudentTeacherRatios(ctx context.Context) ([]dto.RatioRow, error) {
	counts, err := s.metrics.HeadCounts(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RatioRow, 0, len(counts))
	for _, count := range counts {
		row := dto.RatioRow{College: count.College}
		if count.Teachers > 0 {
			ratio := helpers.Round2(float64(count.Students) / float64(count.Teachers))
			row.StudentTeacherRatio = &ratio
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetCourseVacancies flags courses with open seats.
func (s *metricsServiceImpl) GetCourseVacancies(ctx context.Context) ([]dto.VacancyRow, error) {
	vacancies, err := s.metrics.CourseVacancies(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.VacancyRow, 0, len(vacancies))
	for _, vacancy := range vacancies {
		rows = append(rows, dto.VacancyRow{
			CourseID:   vacancy.CourseID,
			Name:       vacancy.Name,
			College:    vacancy.College,
			Enrollment: vacancy.Enrollment,
			Capacity:   vacancy.Capacity,
			IsVacant:   vacancy.Enrollment < vacancy.Capacity,
		})
	}

	return rows, nil
}

// GetBudgetSummary rolls budget totals into one headline row. A nil college
// sums over the whole university.
func (s *metricsServiceImpl) GetBudgetSummary(ctx context.Context, college *string) (*dto.BudgetSummaryRow, error) {
	totals, err := s.metrics.BudgetTotals(ctx, college)
	if err != nil {
		return nil, err
	}

	summary := &dto.BudgetSummaryRow{}
	if college != nil {
		summary.College = *college
	}
	for _, row := range totals {
		summary.TotalBudget += row.TotalBudget
		summary.TotalDonations += row.TotalDonations
		summary.BudgetUsed += row.BudgetUsed
	}
	summary.TotalBudget = helpers.Round2(summary.TotalBudget)
	summary.TotalDonations = helpers.Round2(summary.TotalDonations)
	summary.BudgetUsed = helpers.Round2(summary.BudgetUsed)
	summary.Remaining = helpers.Round2(summary.TotalBudget + summary.TotalDonations - summary.BudgetUsed)

	return summary, nil
}

// GetCollegeBudgets reports the budget position of every college.
func (s *metricsServiceImpl) GetCollegeBudgets(ctx context.Context) ([]dto.BudgetSummaryRow, error) {
	totals, err := s.metrics.BudgetTotals(ctx, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.BudgetSummaryRow, 0, len(totals))
	for _, total := range totals {
		rows = append(rows, dto.BudgetSummaryRow{
			College:        total.College,
			TotalBudget:    helpers.Round2(total.TotalBudget),
			TotalDonations: helpers.Round2(total.TotalDonations),
			BudgetUsed:     helpers.Round2(total.BudgetUsed),
			Remaining:      helpers.Round2(total.TotalBudget + total.TotalDonations - total.BudgetUsed),
		})
	}

	return rows, nil
}

// GetSpendingTrend reports expense totals over time. A nil college covers
// the whole university.
func (s *metricsServiceImpl) GetSpendingTrend(ctx context.Context, college *string) ([]dto.SpendingTrendRow, error) {
	points, err := s.metrics.SpendingTrend(ctx, college)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SpendingTrendRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, dto.SpendingTrendRow{
			College:  point.College,
			Period:   point.Period,
			Spending: helpers.Round2(point.Spending),
		})
	}

	return rows, nil
}

// GetCourseBudgets reports the per-course financial breakdown. Courses with
// no funds at all report a null usage percentage.
func (s *metricsServiceImpl) GetCourseBudgets(ctx context.Context, college *string) ([]dto.CourseBudgetRow, error) {
	budgets, err := s.metrics.CourseBudgets(ctx, college)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.CourseBudgetRow, 0, len(budgets))
	for _, budget := range budgets {
		total := budget.Allocated + budget.Donations
		row := dto.CourseBudgetRow{
			College:    budget.College,
			CourseName: budget.CourseName,
			Allocated:  helpers.Round2(budget.Allocated),
			Donations:  helpers.Round2(budget.Donations),
			Total:      helpers.Round2(total),
			Used:       helpers.Round2(budget.Used),
		}
		if total > 0 {
			usedPct := helpers.Round2(budget.Used / total * 100)
			row.UsedPct = &usedPct
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetDonations lists donation line items, most recent first. A nil college
// covers the whole university; a zero limit returns everything.
func (s *metricsServiceImpl) GetDonations(ctx context.Context, college *string, limit uint64) ([]models.DonationRow, error) {
	return s.metrics.Donations(ctx, college, limit)
}

// GetCourseDonations totals donations per course. A nil college covers the
// whole university.
func (s *metricsServiceImpl) GetCourseDonations(ctx context.Context, college *string) ([]models.CourseDonations, error) {
	return s.metrics.CourseDonations(ctx, college)
}

// GetDeanCollege resolves a dean to their college.
func (s *metricsServiceImpl) GetDeanCollege(ctx context.Context, deanID int64) (*dto.DeanCollegeResponse, error) {
	collegeName, err := s.metrics.GetCollegeByDean(ctx, deanID)
	if err != nil {
		return nil, err
	}
	return &dto.DeanCollegeResponse{CollegeName: collegeName}, nil
}

// GetPlacementSummary reports the alumni placement rate. A nil college
// covers the whole university.
func (s *metricsServiceImpl) GetPlacementSummary(ctx context.Context, college *string) (*dto.PlacementSummaryRow, error) {
	total, placed, err := s.metrics.PlacementTotals(ctx, college)
	if err != nil {
		return nil, err
	}

	summary := &dto.PlacementSummaryRow{TotalAlumni: total, Placed: placed}
	if total > 0 {
		summary.PlacementRate = helpers.Round2(float64(placed) / float64(total) * 100)
	}

	return summary, nil
}

// GetPlacementByCourse reports alumni placement per course.
func (s *metricsServiceImpl) GetPlacementByCourse(ctx context.Context, college *string) ([]dto.CoursePlacementRow, error) {
	counts, err := s.metrics.PlacementByCourse(ctx, college)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.CoursePlacementRow, 0, len(counts))
	for _, count := range counts {
		row := dto.CoursePlacementRow{
			CourseName:  count.CourseName,
			AlumniCount: count.AlumniCount,
			Placed:      count.Placed,
		}
		if count.AlumniCount > 0 {
			row.PlacementRate = helpers.Round2(float64(count.Placed) / float64(count.AlumniCount) * 100)
		}
		if count.AvgGPA != nil {
			avg := helpers.Round2(*count.AvgGPA)
			row.AvgGPA = &avg
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetPlacementByYear reports alumni placement per student year.
func (s *metricsServiceImpl) GetPlacementByYear(ctx context.Context, college *string) ([]dto.YearPlacementRow, error) {
	counts, err := s.metrics.PlacementByYear(ctx, college)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.YearPlacementRow, 0, len(counts))
	for _, count := range counts {
		row := dto.YearPlacementRow{
			AlumniCount: count.AlumniCount,
			Placed:      count.Placed,
		}
		if count.Year != nil {
			row.Year = *count.Year
		}
		if count.AlumniCount > 0 {
			row.PlacementRate = helpers.Round2(float64(count.Placed) / float64(count.AlumniCount) * 100)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
