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

// RentalPatchSpec is the allow-list of updatable rental columns.
var RentalPatchSpec = PatchSpec{
	Table:   "rentals",
	Allowed: []string{"returnDate"},
	Columns: map[string]string{
		"returnDate": "return_date",
	},
	KeyCol: "rental_id",
}

// InstrumentRepository handles instrument and rental database operations
type InstrumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstrumentRepository creates a new InstrumentRepository
func NewInstrumentRepository(db *pgxpool.Pool) *InstrumentRepository {
	return &InstrumentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves instruments, optionally restricted by availability.
func (r *InstrumentRepository) List(ctx context.Context, available *bool) ([]models.Instrument, error) {
	query := r.sb.Select("instrument_id", "name", "type", "is_available").
		From("instruments").
		OrderBy("instrument_id")

	if available != nil {
		query = query.Where(squirrel.Eq{"is_available": *available})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list instruments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list instruments query")
		return nil, fmt.Errorf("error querying instruments: %w", err)
	}
	defer rows.Close()

	instruments := []models.Instrument{}
	for rows.Next() {
		var ins models.Instrument
		if err := rows.Scan(&ins.InstrumentID, &ins.Name, &ins.Type, &ins.IsAvailable); err != nil {
			return nil, fmt.Errorf("error scanning instrument row: %w", err)
		}
		instruments = append(instruments, ins)
	}

	return instruments, rows.Err()
}

// GetByID retrieves one instrument
func (r *InstrumentRepository) GetByID(ctx context.Context, instrumentID int64) (*models.Instrument, error) {
	sql, args, err := r.sb.Select("instrument_id", "name", "type", "is_available").
		From("instruments").
		Where(squirrel.Eq{"instrument_id": instrumentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instrument query: %w", err)
	}

	ins := &models.Instrument{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&ins.InstrumentID, &ins.Name, &ins.Type, &ins.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstrumentNotFound
		}
		logger.Error().Err(err).Int64("instrumentID", instrumentID).Msg("Error scanning instrument row")
		return nil, fmt.Errorf("error getting instrument: %w", err)
	}

	return ins, nil
}

// SetAvailability flips the availability flag of one instrument.
func (r *InstrumentRepository) SetAvailability(ctx context.Context, instrumentID int64, available bool) error {
	sql, args, err := r.sb.Update("instruments").
		Set("is_available", available).
		Where(squirrel.Eq{"instrument_id": instrumentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set availability query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instrumentID", instrumentID).Msg("Error executing set availability query")
		return fmt.Errorf("error setting instrument availability: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstrumentNotFound
	}

	return nil
}

// ListRentals retrieves rentals, optionally restricted to one student.
func (r *InstrumentRepository) ListRentals(ctx context.Context, studentID *int64) ([]models.Rental, error) {
	query := r.sb.Select("rental_id", "student_id", "instrument_id", "start_date", "return_date").
		From("rentals").
		OrderBy("start_date DESC")

	if studentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *studentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rentals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rentals: %w", err)
	}
	defer rows.Close()

	rentals := []models.Rental{}
	for rows.Next() {
		var rental models.Rental
		if err := rows.Scan(&rental.RentalID, &rental.StudentID, &rental.InstrumentID,
			&rental.StartDate, &rental.ReturnDate); err != nil {
			return nil, fmt.Errorf("error scanning rental row: %w", err)
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// CreateRental inserts a rental and returns the generated id.
func (r *InstrumentRepository) CreateRental(ctx context.Context, rental *models.Rental) (int64, error) {
	sql, args, err := r.sb.Insert("rentals").
		Columns("student_id", "instrument_id", "start_date", "return_date").
		Values(rental.StudentID, rental.InstrumentID, rental.StartDate, rental.ReturnDate).
		Suffix("RETURNING rental_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create rental query: %w", err)
	}

	var rentalID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rentalID); err != nil {
		logger.Error().Err(err).Int64("studentID", rental.StudentID).Msg("Error executing create rental query")
		return 0, fmt.Errorf("error creating rental: %w", err)
	}

	return rentalID, nil
}

// GetRental retrieves one rental
func (r *InstrumentRepository) GetRental(ctx context.Context, rentalID int64) (*models.Rental, error) {
	sql, args, err := r.sb.Select("rental_id", "student_id", "instrument_id", "start_date", "return_date").
		From("rentals").
		Where(squirrel.Eq{"rental_id": rentalID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get rental query: %w", err)
	}

	rental := &models.Rental{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&rental.RentalID, &rental.StudentID,
		&rental.InstrumentID, &rental.StartDate, &rental.ReturnDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRentalNotFound
		}
		return nil, fmt.Errorf("error getting rental: %w", err)
	}

	return rental, nil
}

// PartialUpdateRental applies the recognized payload fields to a rental.
// It returns 1 when a statement was executed and 0 for the recognized-field
// free no-op.
func (r *InstrumentRepository) PartialUpdateRental(ctx context.Context, rentalID int64, payload map[string]interface{}) (int, error) {
	sql, args, fields, err := BuildPartialUpdate(r.sb, RentalPatchSpec, payload, rentalID)
	if err != nil {
		return 0, fmt.Errorf("failed to build update rental query: %w", err)
	}
	if fields == 0 {
		return 0, nil
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("rentalID", rentalID).Msg("Error executing update rental query")
		return 0, fmt.Errorf("error updating rental: %w", err)
	}

	logger.Debug().Int64("rentalID", rentalID).Int64("rows", cmdTag.RowsAffected()).Msg("Rental updated")
	return 1, nil
}
