package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/apperrors"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// ClassroomRepository handles classroom and reservation database operations
type ClassroomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves classrooms, optionally restricted by reservable status.
func (r *ClassroomRepository) List(ctx context.Context, status *bool) ([]models.Classroom, error) {
	query := r.sb.Select("room_number", "status", "last_maintained").
		From("classrooms").
		OrderBy("room_number")

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list classrooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classrooms query")
		return nil, fmt.Errorf("error querying classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []models.Classroom{}
	for rows.Next() {
		var room models.Classroom
		if err := rows.Scan(&room.RoomNumber, &room.Status, &room.LastMaintained); err != nil {
			return nil, fmt.Errorf("error scanning classroom row: %w", err)
		}
		classrooms = append(classrooms, room)
	}

	return classrooms, rows.Err()
}

// ListRecentlyMaintained retrieves classrooms whose last maintenance falls
// within the trailing window of whole months.
func (r *ClassroomRepository) ListRecentlyMaintained(ctx context.Context, months int) ([]models.Classroom, error) {
	sql, args, err := r.sb.Select("room_number", "status", "last_maintained").
		From("classrooms").
		Where("last_maintained >= NOW() - make_interval(months => ?)", months).
		OrderBy("last_maintained DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recently maintained query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("months", months).Msg("Error executing recently maintained query")
		return nil, fmt.Errorf("error querying recently maintained classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []models.Classroom{}
	for rows.Next() {
		var room models.Classroom
		if err := rows.Scan(&room.RoomNumber, &room.Status, &room.LastMaintained); err != nil {
			return nil, fmt.Errorf("error scanning classroom row: %w", err)
		}
		classrooms = append(classrooms, room)
	}

	return classrooms, rows.Err()
}

// SetStatus flips the reservable flag of one classroom.
func (r *ClassroomRepository) SetStatus(ctx context.Context, roomNumber string, status bool) error {
	sql, args, err := r.sb.Update("classrooms").
		Set("status", status).
		Where(squirrel.Eq{"room_number": roomNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set classroom status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("roomNumber", roomNumber).Msg("Error executing set classroom status query")
		return fmt.Errorf("error setting classroom status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}

// ListReservations retrieves bookings, optionally restricted to one student.
func (r *ClassroomRepository) ListReservations(ctx context.Context, studentID *int64) ([]models.Reservation, error) {
	query := r.sb.Select("reserve_id", "student_id", "room_number", "start_time", "end_time").
		From("reserves").
		OrderBy("start_time DESC")

	if studentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *studentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reservations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(&res.ReserveID, &res.StudentID, &res.RoomNumber,
			&res.StartTime, &res.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// CreateReservation inserts a booking and returns the generated id.
func (r *ClassroomRepository) CreateReservation(ctx context.Context, res *models.Reservation) (int64, error) {
	sql, args, err := r.sb.Insert("reserves").
		Columns("student_id", "room_number", "start_time", "end_time").
		Values(res.StudentID, res.RoomNumber, res.StartTime, res.EndTime).
		Suffix("RETURNING reserve_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create reservation query: %w", err)
	}

	var reserveID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&reserveID); err != nil {
		logger.Error().Err(err).Str("roomNumber", res.RoomNumber).Msg("Error executing create reservation query")
		return 0, fmt.Errorf("error creating reservation: %w", err)
	}

	return reserveID, nil
}

// DeleteReservation cancels a booking. Cancelling an absent id is a silent
// no-op.
func (r *ClassroomRepository) DeleteReservation(ctx context.Context, reserveID int64) error {
	sql, args, err := r.sb.Delete("reserves").
		Where(squirrel.Eq{"reserve_id": reserveID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete reservation query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("reserveID", reserveID).Msg("Error executing delete reservation query")
		return fmt.Errorf("error deleting reservation: %w", err)
	}

	return nil
}
