package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// ClubRepository handles student organization database operations
type ClubRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves all clubs.
func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	sql, args, err := r.sb.Select("name", "category", "description").
		From("clubs").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list clubs query")
		return nil, fmt.Errorf("error querying clubs: %w", err)
	}
	defer rows.Close()

	clubs := []models.Club{}
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(&club.Name, &club.Category, &club.Description); err != nil {
			return nil, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

// AddMember enrolls a student in a club.
func (r *ClubRepository) AddMember(ctx context.Context, clubName string, studentID int64) error {
	sql, args, err := r.sb.Insert("club_members").
		Columns("club_name", "student_id").
		Values(clubName, studentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add club member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("club", clubName).Int64("studentID", studentID).Msg("Error executing add club member query")
		return fmt.Errorf("error adding club member: %w", err)
	}

	return nil
}

// RemoveMember drops a student from a club. Removing an absent membership
// is a silent no-op.
func (r *ClubRepository) RemoveMember(ctx context.Context, clubName string, studentID int64) error {
	sql, args, err := r.sb.Delete("club_members").
		Where(squirrel.Eq{"club_name": clubName, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove club member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("club", clubName).Int64("studentID", studentID).Msg("Error executing remove club member query")
		return fmt.Errorf("error removing club member: %w", err)
	}

	return nil
}
