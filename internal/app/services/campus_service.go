package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/apperrors"
)

// rentalDateLayout is the wire format of rental dates.
const rentalDateLayout = "2006-01-02"

// clubStore is the slice of the club repository the service needs.
type clubStore interface {
	List(ctx context.Context) ([]models.Club, error)
	AddMember(ctx context.Context, clubName string, studentID int64) error
	RemoveMember(ctx context.Context, clubName string, studentID int64) error
}

// instrumentStore is the slice of the instrument repository the service needs.
type instrumentStore interface {
	List(ctx context.Context, available *bool) ([]models.Instrument, error)
	GetByID(ctx context.Context, instrumentID int64) (*models.Instrument, error)
	SetAvailability(ctx context.Context, instrumentID int64, available bool) error
	ListRentals(ctx context.Context, studentID *int64) ([]models.Rental, error)
	CreateRental(ctx context.Context, rental *models.Rental) (int64, error)
	GetRental(ctx context.Context, rentalID int64) (*models.Rental, error)
	PartialUpdateRental(ctx context.Context, rentalID int64, payload map[string]interface{}) (int, error)
}

// classroomStore is the slice of the classroom repository the service needs.
type classroomStore interface {
	List(ctx context.Context, status *bool) ([]models.Classroom, error)
	ListRecentlyMaintained(ctx context.Context, months int) ([]models.Classroom, error)
	SetStatus(ctx context.Context, roomNumber string, status bool) error
	ListReservations(ctx context.Context, studentID *int64) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, res *models.Reservation) (int64, error)
	DeleteReservation(ctx context.Context, reserveID int64) error
}

// CampusService defines the interface for club, instrument, rental,
// classroom and reservation operations
type CampusService interface {
	GetClubs(ctx context.Context) ([]models.Club, error)
	JoinClub(ctx context.Context, clubName string, studentID int64) error
	LeaveClub(ctx context.Context, clubName string, studentID int64) error

	GetInstruments(ctx context.Context, available *bool) ([]models.Instrument, error)
	GetRentals(ctx context.Context, studentID *int64) ([]models.Rental, error)
	CreateRental(ctx context.Context, req *dto.CreateRentalRequest) (*dto.CreateRentalResponse, error)
	UpdateRental(ctx context.Context, rentalID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error)

	GetClassrooms(ctx context.Context, status *bool) ([]models.Classroom, error)
	GetRecentlyMaintained(ctx context.Context, months int) ([]models.Classroom, error)
	GetReservations(ctx context.Context, studentID *int64) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.CreateReservationResponse, error)
	DeleteReservation(ctx context.Context, reserveID int64) error
}

// campusServiceImpl implements CampusService
type campusServiceImpl struct {
	clubs       clubStore
	instruments instrumentStore
	classrooms  classroomStore
	logger      zerolog.Logger
}

// NewCampusService creates a new CampusService
func NewCampusService(clubs clubStore, instruments instrumentStore, classrooms classroomStore, logger zerolog.Logger) CampusService {
	return &campusServiceImpl{
		clubs:       clubs,
		instruments: instruments,
		classrooms:  classrooms,
		logger:      logger,
	}
}

// GetClubs lists all student organizations.
func (s *campusServiceImpl) GetClubs(ctx context.Context) ([]models.Club, error) {
	return s.clubs.List(ctx)
}

// JoinClub enrolls a student in a club.
func (s *campusServiceImpl) JoinClub(ctx context.Context, clubName string, studentID int64) error {
	return s.clubs.AddMember(ctx, clubName, studentID)
}

// LeaveClub drops a student from a club. Absent memberships leave as a
// no-op.
func (s *campusServiceImpl) LeaveClub(ctx context.Context, clubName string, studentID int64) error {
	return s.clubs.RemoveMember(ctx, clubName, studentID)
}

// GetInstruments lists instruments, optionally restricted by availability.
func (s *campusServiceImpl) GetInstruments(ctx context.Context, available *bool) ([]models.Instrument, error) {
	return s.instruments.List(ctx, available)
}

// GetRentals lists rentals, optionally restricted to one student.
func (s *campusServiceImpl) GetRentals(ctx context.Context, studentID *int64) ([]models.Rental, error) {
	return s.instruments.ListRentals(ctx, studentID)
}

// CreateRental opens a rental on an available instrument and marks the
// instrument unavailable.
func (s *campusServiceImpl) CreateRental(ctx context.Context, req *dto.CreateRentalRequest) (*dto.CreateRentalResponse, error) {
	instrument, err := s.instruments.GetByID(ctx, req.InstrumentID)
	if err != nil {
		return nil, err
	}
	if !instrument.IsAvailable {
		return nil, apperrors.ErrInstrumentUnavailable
	}

	startDate, err := time.Parse(rentalDateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startDate must be YYYY-MM-DD")
	}

	rental := &models.Rental{
		StudentID:    req.StudentID,
		InstrumentID: req.InstrumentID,
		StartDate:    startDate,
	}
	if req.ReturnDate != nil {
		returnDate, err := time.Parse(rentalDateLayout, *req.ReturnDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("returnDate must be YYYY-MM-DD")
		}
		rental.ReturnDate = &returnDate
	}

	rentalID, err := s.instruments.CreateRental(ctx, rental)
	if err != nil {
		return nil, err
	}

	if err := s.instruments.SetAvailability(ctx, req.InstrumentID, false); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("rentalID", rentalID).Int64("instrumentID", req.InstrumentID).Msg("Rental opened")
	return &dto.CreateRentalResponse{RentalID: rentalID}, nil
}

// UpdateRental applies a partial update. Setting a return date closes the
// rental and frees the instrument.
func (s *campusServiceImpl) UpdateRental(ctx context.Context, rentalID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error) {
	updated, err := s.instruments.PartialUpdateRental(ctx, rentalID, payload)
	if err != nil {
		return nil, err
	}

	if returnDate, ok := payload["returnDate"]; ok && returnDate != nil && updated > 0 {
		rental, err := s.instruments.GetRental(ctx, rentalID)
		if err != nil {
			return nil, err
		}
		if err := s.instruments.SetAvailability(ctx, rental.InstrumentID, true); err != nil {
			return nil, err
		}
		s.logger.Info().Int64("rentalID", rentalID).Int64("instrumentID", rental.InstrumentID).Msg("Rental closed")
	}

	return &dto.UpdatedResponse{Updated: updated}, nil
}

// GetClassrooms lists classrooms, optionally restricted by reservable
// status.
func (s *campusServiceImpl) GetClassrooms(ctx context.Context, status *bool) ([]models.Classroom, error) {
	return s.classrooms.List(ctx, status)
}

// GetRecentlyMaintained lists classrooms maintained within the trailing
// window of whole months.
func (s *campusServiceImpl) GetRecentlyMaintained(ctx context.Context, months int) ([]models.Classroom, error) {
	return s.classrooms.ListRecentlyMaintained(ctx, months)
}

// GetReservations lists bookings, optionally restricted to one student.
func (s *campusServiceImpl) GetReservations(ctx context.Context, studentID *int64) ([]models.Reservation, error) {
	return s.classrooms.ListReservations(ctx, studentID)
}

// CreateReservation books a classroom time slot.
func (s *campusServiceImpl) CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.CreateReservationResponse, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startTime must be RFC 3339")
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError("endTime must be RFC 3339")
	}
	if !endTime.After(startTime) {
		return nil, apperrors.NewBadRequestError("endTime must be after startTime")
	}

	reservation := &models.Reservation{
		StudentID:  req.StudentID,
		RoomNumber: req.RoomNumber,
		StartTime:  startTime,
		EndTime:    endTime,
	}

	reserveID, err := s.classrooms.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reserveID", reserveID).Str("roomNumber", req.RoomNumber).Msg("Reservation created")
	return &dto.CreateReservationResponse{ReserveID: reserveID}, nil
}

// DeleteReservation cancels a booking. Absent ids cancel as a no-op.
func (s *campusServiceImpl) DeleteReservation(ctx context.Context, reserveID int64) error {
	return s.classrooms.DeleteReservation(ctx, reserveID)
}
