package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/apperrors"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// MetricsRepository runs the report aggregations. Queries return raw GROUP BY
// counts; percentages and ratios are derived by the metrics service.
type MetricsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMetricsRepository creates a new MetricsRepository
func NewMetricsRepository(db *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// demographicCountsSQL buckets students over each demographic attribute in
// one pass. NULL attributes fall out of their bucket rather than surfacing
// as a NULL category.
const demographicCountsSQL = `
SELECT type, category, COUNT(*) AS count FROM (
        SELECT 'housing' AS type, housing_status AS category FROM students WHERE housing_status IS NOT NULL
  UNION ALL
        SELECT 'race' AS type, race AS category FROM students WHERE race IS NOT NULL
  UNION ALL
        SELECT 'income' AS type, income AS category FROM students WHERE income IS NOT NULL
  UNION ALL
        SELECT 'origin' AS type, origin AS category FROM students WHERE origin IS NOT NULL
  UNION ALL
        SELECT 'year' AS type, year AS category FROM students WHERE year IS NOT NULL
) buckets
GROUP BY type, category
ORDER BY type, category`

// DemographicCounts returns per-category student counts for every
// demographic attribute.
func (r *MetricsRepository) DemographicCounts(ctx context.Context) ([]models.DemographicCount, error) {
	rows, err := r.db.Query(ctx, demographicCountsSQL)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing demographic counts query")
		return nil, fmt.Errorf("error querying demographic counts: %w", err)
	}
	defer rows.Close()

	counts := []models.DemographicCount{}
	for rows.Next() {
		var count models.DemographicCount
		if err := rows.Scan(&count.Type, &count.Category, &count.Count); err != nil {
			return nil, fmt.Errorf("error scanning demographic count row: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

const employmentCountsSQL = `
SELECT s.college,
       COUNT(a.student_id)                        AS total_alumni,
       COUNT(a.student_id) FILTER (WHERE a.has_job) AS employed_alumni
FROM alumni a
JOIN students s ON s.user_id = a.student_id
WHERE s.college IS NOT NULL
GROUP BY s.college
ORDER BY s.college`

// EmploymentCounts aggregates alumni employment per college.
func (r *MetricsRepository) EmploymentCounts(ctx context.Context) ([]models.EmploymentCount, error) {
	rows, err := r.db.Query(ctx, employmentCountsSQL)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing employment counts query")
		return nil, fmt.Errorf("error querying employment counts: %w", err)
	}
	defer rows.Close()

	counts := []models.EmploymentCount{}
	for rows.Next() {
		var count models.EmploymentCount
		if err := rows.Scan(&count.College, &count.TotalAlumni, &count.EmployedAlumni); err != nil {
			return nil, fmt.Errorf("error scanning employment count row: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

// CollegeGPAs averages student GPA per college.
func (r *MetricsRepository) CollegeGPAs(ctx context.Context) ([]models.CollegeGPA, error) {
	sql, args, err := r.sb.Select("college", "AVG(gpa) AS average_gpa").
		From("students").
		Where("college IS NOT NULL").
		GroupBy("college").
		OrderBy("college").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build college gpas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing college gpas query")
		return nil, fmt.Errorf("error querying college gpas: %w", err)
	}
	defer rows.Close()

	gpas := []models.CollegeGPA{}
	for rows.Next() {
		var row models.CollegeGPA
		if err := rows.Scan(&row.College, &row.AverageGPA); err != nil {
			return nil, fmt.Errorf("error scanning college gpa row: %w", err)
		}
		gpas = append(gpas, row)
	}

	return gpas, rows.Err()
}

// headCountsSQL pairs each college's student head count with its teacher
// head count. Teachers are professors distinct per college through the
// courses they teach.
const headCountsSQL = `
SELECT c.college_name,
       COALESCE(st.students, 0) AS students,
       COALESCE(tc.teachers, 0) AS teachers
FROM colleges c
LEFT JOIN (
        SELECT college, COUNT(*) AS students
        FROM students
        WHERE college IS NOT NULL
        GROUP BY college
) st ON st.college = c.college_name
LEFT JOIN (
        SELECT co.college, COUNT(DISTINCT pc.professor_id) AS teachers
        FROM professors_courses pc
        JOIN courses co ON co.id = pc.course_id
        GROUP BY co.college
) tc ON tc.college = c.college_name
ORDER BY c.college_name`

// HeadCounts pairs student and teacher counts per college.
func (r *MetricsRepository) HeadCounts(ctx context.Context) ([]models.HeadCount, error) {
	rows, err := r.db.Query(ctx, headCountsSQL)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing head counts query")
		return nil, fmt.Errorf("error querying head counts: %w", err)
	}
	defer rows.Close()

	counts := []models.HeadCount{}
	for rows.Next() {
		var count models.HeadCount
		if err := rows.Scan(&count.College, &count.Students, &count.Teachers); err != nil {
			return nil, fmt.Errorf("error scanning head count row: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

// CourseVacancies lists every course's enrollment against capacity.
func (r *MetricsRepository) CourseVacancies(ctx context.Context) ([]models.CourseVacancy, error) {
	sql, args, err := r.sb.Select("id", "name", "college", "enrollment", "capacity").
		From("courses").
		OrderBy("college", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course vacancies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course vacancies query")
		return nil, fmt.Errorf("error querying course vacancies: %w", err)
	}
	defer rows.Close()

	vacancies := []models.CourseVacancy{}
	for rows.Next() {
		var vacancy models.CourseVacancy
		if err := rows.Scan(&vacancy.CourseID, &vacancy.Name, &vacancy.College,
			&vacancy.Enrollment, &vacancy.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning course vacancy row: %w", err)
		}
		vacancies = append(vacancies, vacancy)
	}

	return vacancies, rows.Err()
}

const budgetTotalsSQL = `
SELECT c.college_name,
       COALESCE(c.budget, 0)    AS total_budget,
       COALESCE(d.donations, 0) AS total_donations,
       COALESCE(e.used, 0)      AS budget_used
FROM colleges c
LEFT JOIN (
        SELECT college, SUM(amount) AS donations FROM donations GROUP BY college
) d ON d.college = c.college_name
LEFT JOIN (
        SELECT college, SUM(amount) AS used FROM expenses GROUP BY college
) e ON e.college = c.college_name`

// BudgetTotals aggregates allocation, donations and spending per college.
// A nil college covers the whole university.
func (r *MetricsRepository) BudgetTotals(ctx context.Context, college *string) ([]models.BudgetTotals, error) {
	sql := budgetTotalsSQL
	args := []interface{}{}
	if college != nil {
		sql += " WHERE c.college_name = $1"
		args = append(args, *college)
	}
	sql += " ORDER BY c.college_name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing budget totals query")
		return nil, fmt.Errorf("error querying budget totals: %w", err)
	}
	defer rows.Close()

	totals := []models.BudgetTotals{}
	for rows.Next() {
		var row models.BudgetTotals
		if err := rows.Scan(&row.College, &row.TotalBudget, &row.TotalDonations, &row.BudgetUsed); err != nil {
			return nil, fmt.Errorf("error scanning budget totals row: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}

// SpendingTrend totals expenses per college per day. A nil college covers
// the whole university.
func (r *MetricsRepository) SpendingTrend(ctx context.Context, college *string) ([]models.SpendingPoint, error) {
	query := r.sb.Select("college", "date AS period", "SUM(amount) AS spending").
		From("expenses").
		GroupBy("college", "date").
		OrderBy("date ASC")

	if college != nil {
		query = query.Where(squirrel.Eq{"college": *college})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build spending trend query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing spending trend query")
		return nil, fmt.Errorf("error querying spending trend: %w", err)
	}
	defer rows.Close()

	points := []models.SpendingPoint{}
	for rows.Next() {
		var point models.SpendingPoint
		if err := rows.Scan(&point.College, &point.Period, &point.Spending); err != nil {
			return nil, fmt.Errorf("error scanning spending trend row: %w", err)
		}
		points = append(points, point)
	}

	return points, rows.Err()
}

const courseBudgetsSQL = `
SELECT co.college,
       co.name                  AS course_name,
       COALESCE(co.budget, 0)   AS allocated,
       COALESCE(d.donations, 0) AS donations,
       COALESCE(e.used, 0)      AS used
FROM courses co
LEFT JOIN (
        SELECT course_id, SUM(amount) AS donations
        FROM donations WHERE course_id IS NOT NULL GROUP BY course_id
) d ON d.course_id = co.id
LEFT JOIN (
        SELECT course_id, SUM(amount) AS used
        FROM expenses WHERE course_id IS NOT NULL GROUP BY course_id
) e ON e.course_id = co.id`

// CourseBudgets aggregates allocation, donations and spending per course.
// A nil college covers the whole university.
func (r *MetricsRepository) CourseBudgets(ctx context.Context, college *string) ([]models.CourseBudget, error) {
	sql := courseBudgetsSQL
	args := []interface{}{}
	if college != nil {
		sql += " WHERE co.college = $1"
		args = append(args, *college)
	}
	sql += " ORDER BY co.college, co.name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course budgets query")
		return nil, fmt.Errorf("error querying course budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.CourseBudget{}
	for rows.Next() {
		var budget models.CourseBudget
		if err := rows.Scan(&budget.College, &budget.CourseName, &budget.Allocated,
			&budget.Donations, &budget.Used); err != nil {
			return nil, fmt.Errorf("error scanning course budget row: %w", err)
		}
		budgets = append(budgets, budget)
	}

	return budgets, rows.Err()
}

// Donations lists donation line items with the course name joined in, most
// recent first. A nil college covers the whole university; a zero limit
// returns everything.
func (r *MetricsRepository) Donations(ctx context.Context, college *string, limit uint64) ([]models.DonationRow, error) {
	query := r.sb.Select("d.college", "co.name AS course_name", "d.donor", "d.amount", "d.date").
		From("donations d").
		LeftJoin("courses co ON co.id = d.course_id").
		OrderBy("d.date DESC")

	if college != nil {
		query = query.Where(squirrel.Eq{"d.college": *college})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build donations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing donations query")
		return nil, fmt.Errorf("error querying donations: %w", err)
	}
	defer rows.Close()

	donations := []models.DonationRow{}
	for rows.Next() {
		var row models.DonationRow
		if err := rows.Scan(&row.College, &row.CourseName, &row.Donor, &row.Amount, &row.Date); err != nil {
			return nil, fmt.Errorf("error scanning donation row: %w", err)
		}
		donations = append(donations, row)
	}

	return donations, rows.Err()
}

// CourseDonations totals donations per course. A nil college covers the
// whole university.
func (r *MetricsRepository) CourseDonations(ctx context.Context, college *string) ([]models.CourseDonations, error) {
	query := r.sb.Select("co.college", "co.name AS course_name", "COALESCE(SUM(d.amount), 0) AS donations").
		From("courses co").
		LeftJoin("donations d ON d.course_id = co.id").
		GroupBy("co.college", "co.name").
		OrderBy("co.college", "co.name")

	if college != nil {
		query = query.Where(squirrel.Eq{"co.college": *college})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course donations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying course donations: %w", err)
	}
	defer rows.Close()

	donations := []models.CourseDonations{}
	for rows.Next() {
		var row models.CourseDonations
		if err := rows.Scan(&row.College, &row.CourseName, &row.Donations); err != nil {
			return nil, fmt.Errorf("error scanning course donations row: %w", err)
		}
		donations = append(donations, row)
	}

	return donations, rows.Err()
}

// GetCollegeByDean resolves a dean's user id to the college they run.
func (r *MetricsRepository) GetCollegeByDean(ctx context.Context, deanID int64) (string, error) {
	sql, args, err := r.sb.Select("college_name").
		From("colleges").
		Where(squirrel.Eq{"dean": deanID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build college by dean query: %w", err)
	}

	var collegeName string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&collegeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrDeanHasNoCollege
		}
		logger.Error().Err(err).Int64("deanID", deanID).Msg("Error scanning college by dean row")
		return "", fmt.Errorf("error getting college by dean: %w", err)
	}

	return collegeName, nil
}

const placementTotalsSQL = `
SELECT COUNT(*)                          AS total_alumni,
       COUNT(*) FILTER (WHERE a.has_job) AS placed
FROM alumni a
JOIN students s ON s.user_id = a.student_id`

// PlacementTotals returns the alumni and placed counts. A nil college covers
// the whole university.
func (r *MetricsRepository) PlacementTotals(ctx context.Context, college *string) (total, placed int64, err error) {
	sql := placementTotalsSQL
	args := []interface{}{}
	if college != nil {
		sql += " WHERE s.college = $1"
		args = append(args, *college)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total, &placed); err != nil {
		logger.Error().Err(err).Msg("Error executing placement totals query")
		return 0, 0, fmt.Errorf("error querying placement totals: %w", err)
	}
	return total, placed, nil
}

const placementByCourseSQL = `
SELECT co.name                                  AS course_name,
       COUNT(a.student_id)                      AS alumni_count,
       COUNT(a.student_id) FILTER (WHERE a.has_job) AS placed,
       AVG(s.gpa)                               AS avg_gpa
FROM alumni a
JOIN students s ON s.user_id = a.student_id
JOIN students_courses sc ON sc.student_id = a.student_id
JOIN courses co ON co.id = sc.course_id`

// PlacementByCourse aggregates alumni placement per course. A nil college
// covers the whole university.
func (r *MetricsRepository) PlacementByCourse(ctx context.Context, college *string) ([]models.PlacementCount, error) {
	sql := placementByCourseSQL
	args := []interface{}{}
	if college != nil {
		sql += " WHERE s.college = $1"
		args = append(args, *college)
	}
	sql += " GROUP BY co.name ORDER BY co.name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing placement by course query")
		return nil, fmt.Errorf("error querying placement by course: %w", err)
	}
	defer rows.Close()

	counts := []models.PlacementCount{}
	for rows.Next() {
		var count models.PlacementCount
		if err := rows.Scan(&count.CourseName, &count.AlumniCount, &count.Placed, &count.AvgGPA); err != nil {
			return nil, fmt.Errorf("error scanning placement by course row: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

const placementByYearSQL = `
SELECT s.year,
       COUNT(a.student_id)                      AS alumni_count,
       COUNT(a.student_id) FILTER (WHERE a.has_job) AS placed
FROM alumni a
JOIN students s ON s.user_id = a.student_id`

// PlacementByYear aggregates alumni placement per student year. A nil
// college covers the whole university.
func (r *MetricsRepository) PlacementByYear(ctx context.Context, college *string) ([]models.PlacementCount, error) {
	sql := placementByYearSQL
	args := []interface{}{}
	if college != nil {
		sql += " WHERE s.college = $1"
		args = append(args, *college)
	}
	sql += " GROUP BY s.year ORDER BY s.year"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing placement by year query")
		return nil, fmt.Errorf("error querying placement by year: %w", err)
	}
	defer rows.Close()

	counts := []models.PlacementCount{}
	for rows.Next() {
		var count models.PlacementCount
		if err := rows.Scan(&count.Year, &count.AlumniCount, &count.Placed); err != nil {
			return nil, fmt.Errorf("error scanning placement by year row: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}
