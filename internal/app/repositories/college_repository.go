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

// CollegeRepository handles college, ranking and advisor database operations
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves all colleges.
func (r *CollegeRepository) List(ctx context.Context) ([]models.College, error) {
	sql, args, err := r.sb.Select("college_name", "dean", "budget", "status").
		From("colleges").
		OrderBy("college_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.CollegeName, &college.Dean, &college.Budget, &college.Status); err != nil {
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	return colleges, rows.Err()
}

// Exists reports whether a college name is already taken.
func (r *CollegeRepository) Exists(ctx context.Context, collegeName string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("colleges").
		Where(squirrel.Eq{"college_name": collegeName}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build college exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking college existence: %w", err)
	}

	return true, nil
}

// Create inserts a college.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	sql, args, err := r.sb.Insert("colleges").
		Columns("college_name", "dean", "budget", "status").
		Values(college.CollegeName, college.Dean, college.Budget, college.Status).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create college query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("college", college.CollegeName).Msg("Error executing create college query")
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// Delete removes a college. Deleting an absent name is a silent no-op.
func (r *CollegeRepository) Delete(ctx context.Context, collegeName string) error {
	sql, args, err := r.sb.Delete("colleges").
		Where(squirrel.Eq{"college_name": collegeName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete college query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("college", collegeName).Msg("Error executing delete college query")
		return fmt.Errorf("error deleting college: %w", err)
	}

	return nil
}

// ListRankings retrieves school rankings ordered best first.
func (r *CollegeRepository) ListRankings(ctx context.Context) ([]models.SchoolRanking, error) {
	sql, args, err := r.sb.Select("school_name", "ranking").
		From("school_rankings").
		OrderBy("ranking ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rankings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rankings: %w", err)
	}
	defer rows.Close()

	rankings := []models.SchoolRanking{}
	for rows.Next() {
		var ranking models.SchoolRanking
		if err := rows.Scan(&ranking.SchoolName, &ranking.Ranking); err != nil {
			return nil, fmt.Errorf("error scanning ranking row: %w", err)
		}
		rankings = append(rankings, ranking)
	}

	return rankings, rows.Err()
}

// ListAdvisors retrieves every user holding the advisor role.
func (r *CollegeRepository) ListAdvisors(ctx context.Context) ([]models.User, error) {
	sql, args, err := r.sb.Select("user_id", "first_name", "last_name", "email", "role").
		From("users").
		Where(squirrel.Eq{"role": models.RoleAdvisor}).
		OrderBy("last_name", "first_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list advisors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list advisors query")
		return nil, fmt.Errorf("error querying advisors: %w", err)
	}
	defer rows.Close()

	advisors := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.Email, &user.Role); err != nil {
			return nil, fmt.Errorf("error scanning advisor row: %w", err)
		}
		advisors = append(advisors, user)
	}

	return advisors, rows.Err()
}
