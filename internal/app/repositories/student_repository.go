package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// StudentPatchSpec is the allow-list of updatable student columns. Payload
// keys outside this list are ignored.
var StudentPatchSpec = PatchSpec{
	Table:   "students",
	Allowed: []string{"year", "housingStatus", "race", "income", "origin", "college", "advisor"},
	Columns: map[string]string{
		"housingStatus": "housing_status",
	},
	KeyCol: "user_id",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves students joined with their user identity. Empty filter
// values impose no constraint.
func (r *StudentRepository) List(ctx context.Context, college, year string) ([]*models.Student, error) {
	query := r.sb.Select(
		"s.user_id", "s.college", "s.year", "s.gpa", "s.housing_status",
		"s.race", "s.income", "s.origin", "s.advisor",
		"u.first_name", "u.last_name", "u.email", "u.role").
		From("students s").
		Join("users u ON u.user_id = s.user_id").
		OrderBy("s.user_id ASC")

	if college != "" {
		query = query.Where(squirrel.Eq{"s.college": college})
	}
	if year != "" {
		query = query.Where(squirrel.Eq{"s.year": year})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{User: &models.User{}}
		if err := rows.Scan(
			&student.UserID, &student.College, &student.Year, &student.GPA,
			&student.HousingStatus, &student.Race, &student.Income, &student.Origin,
			&student.Advisor,
			&student.User.FirstName, &student.User.LastName, &student.User.Email,
			&student.User.Role); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		student.User.UserID = student.UserID
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a student record. Missing optional attributes insert as NULL.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "college", "year", "housing_status", "race", "income", "origin", "advisor").
		Values(student.UserID, student.College, student.Year, student.HousingStatus,
			student.Race, student.Income, student.Origin, student.Advisor).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// PartialUpdate applies the recognized payload fields to a student row.
// It returns 1 when a statement was executed and 0 for the recognized-field
// free no-op.
func (r *StudentRepository) PartialUpdate(ctx context.Context, userID int64, payload map[string]interface{}) (int, error) {
	sql, args, fields, err := BuildPartialUpdate(r.sb, StudentPatchSpec, payload, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to build update student query: %w", err)
	}
	if fields == 0 {
		return 0, nil
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update student query")
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	logger.Debug().Int64("userID", userID).Int64("rows", cmdTag.RowsAffected()).Msg("Student updated")
	return 1, nil
}

// Delete removes a student row. Deleting an absent id is a silent no-op.
func (r *StudentRepository) Delete(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

// GetGPA looks up one student's GPA. An absent student or unrecorded GPA
// returns nil, not an error.
func (r *StudentRepository) GetGPA(ctx context.Context, userID int64) (*float64, error) {
	sql, args, err := r.sb.Select("gpa").
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gpa query: %w", err)
	}

	var gpa *float64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&gpa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting student gpa: %w", err)
	}

	return gpa, nil
}

// ListGPAs returns all recorded GPAs for the distribution histogram.
func (r *StudentRepository) ListGPAs(ctx context.Context) ([]float64, error) {
	sql, args, err := r.sb.Select("gpa").
		From("students").
		Where("gpa IS NOT NULL").
		OrderBy("college").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gpas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying gpas: %w", err)
	}
	defer rows.Close()

	gpas := []float64{}
	for rows.Next() {
		var gpa float64
		if err := rows.Scan(&gpa); err != nil {
			return nil, fmt.Errorf("error scanning gpa row: %w", err)
		}
		gpas = append(gpas, gpa)
	}

	return gpas, rows.Err()
}

// GetSchedule returns a student's enrolled courses ordered by meeting time.
func (r *StudentRepository) GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error) {
	sql, args, err := r.sb.Select(
		"c.name AS course_name", "c.id AS course_id", "c.time", "c.room_number", "c.enrollment").
		From("students_courses sc").
		Join("courses c ON sc.course_id = c.id").
		Where(squirrel.Eq{"sc.student_id": userID}).
		OrderBy("c.time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get schedule query")
		return nil, fmt.Errorf("error querying schedule: %w", err)
	}
	defer rows.Close()

	entries := []models.ScheduleEntry{}
	for rows.Next() {
		var entry models.ScheduleEntry
		if err := rows.Scan(&entry.CourseName, &entry.CourseID, &entry.Time,
			&entry.RoomNumber, &entry.Enrollment); err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetAdvisorEmail looks up the email of a student's advisor. A student
// without an advisor returns nil, not an error.
func (r *StudentRepository) GetAdvisorEmail(ctx context.Context, userID int64) (*string, error) {
	sql, args, err := r.sb.Select("u.email").
		From("students s").
		Join("users u ON u.user_id = s.advisor").
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get advisor query: %w", err)
	}

	var email string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting advisor email: %w", err)
	}

	return &email, nil
}

// ListClubs returns the clubs a student belongs to.
func (r *StudentRepository) ListClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error) {
	sql, args, err := r.sb.Select("cm.club_name", "cm.student_id").
		From("club_members cm").
		Where(squirrel.Eq{"cm.student_id": userID}).
		OrderBy("cm.club_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying club memberships: %w", err)
	}
	defer rows.Close()

	memberships := []models.ClubMembership{}
	for rows.Next() {
		var m models.ClubMembership
		if err := rows.Scan(&m.ClubName, &m.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning club membership row: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}
