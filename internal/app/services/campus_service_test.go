package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/apperrors"
)

type mockClubStore struct{}

func (m *mockClubStore) List(ctx context.Context) ([]models.Club, error) { return nil, nil }
func (m *mockClubStore) AddMember(ctx context.Context, clubName string, studentID int64) error {
	return nil
}
func (m *mockClubStore) RemoveMember(ctx context.Context, clubName string, studentID int64) error {
	return nil
}

// mockInstrumentStore tracks availability flips per instrument.
type mockInstrumentStore struct {
	instruments map[int64]*models.Instrument
	rentals     map[int64]*models.Rental
	nextID      int64
	patchResult int
}

func (m *mockInstrumentStore) List(ctx context.Context, available *bool) ([]models.Instrument, error) {
	return nil, nil
}
func (m *mockInstrumentStore) GetByID(ctx context.Context, instrumentID int64) (*models.Instrument, error) {
	ins, ok := m.instruments[instrumentID]
	if !ok {
		return nil, apperrors.ErrInstrumentNotFound
	}
	return ins, nil
}
func (m *mockInstrumentStore) SetAvailability(ctx context.Context, instrumentID int64, available bool) error {
	ins, ok := m.instruments[instrumentID]
	if !ok {
		return apperrors.ErrInstrumentNotFound
	}
	ins.IsAvailable = available
	return nil
}
func (m *mockInstrumentStore) ListRentals(ctx context.Context, studentID *int64) ([]models.Rental, error) {
	return nil, nil
}
func (m *mockInstrumentStore) CreateRental(ctx context.Context, rental *models.Rental) (int64, error) {
	m.nextID++
	rental.RentalID = m.nextID
	m.rentals[m.nextID] = rental
	return m.nextID, nil
}
func (m *mockInstrumentStore) GetRental(ctx context.Context, rentalID int64) (*models.Rental, error) {
	rental, ok := m.rentals[rentalID]
	if !ok {
		return nil, apperrors.ErrRentalNotFound
	}
	return rental, nil
}
func (m *mockInstrumentStore) PartialUpdateRental(ctx context.Context, rentalID int64, payload map[string]interface{}) (int, error) {
	return m.patchResult, nil
}

type mockClassroomStore struct{}

func (m *mockClassroomStore) List(ctx context.Context, status *bool) ([]models.Classroom, error) {
	return nil, nil
}
func (m *mockClassroomStore) ListRecentlyMaintained(ctx context.Context, months int) ([]models.Classroom, error) {
	return nil, nil
}
func (m *mockClassroomStore) SetStatus(ctx context.Context, roomNumber string, status bool) error {
	return nil
}
func (m *mockClassroomStore) ListReservations(ctx context.Context, studentID *int64) ([]models.Reservation, error) {
	return nil, nil
}
func (m *mockClassroomStore) CreateReservation(ctx context.Context, res *models.Reservation) (int64, error) {
	return 8, nil
}
func (m *mockClassroomStore) DeleteReservation(ctx context.Context, reserveID int64) error {
	return nil
}

func newCampusService(instruments *mockInstrumentStore) CampusService {
	return NewCampusService(&mockClubStore{}, instruments, &mockClassroomStore{}, zerolog.Nop())
}

func TestCreateRentalMarksInstrumentUnavailable(t *testing.T) {
	instruments := &mockInstrumentStore{
		instruments: map[int64]*models.Instrument{
			2: {InstrumentID: 2, Name: "Cello", Type: "String", IsAvailable: true},
		},
		rentals: map[int64]*models.Rental{},
	}

	resp, err := newCampusService(instruments).CreateRental(context.Background(), &dto.CreateRentalRequest{
		StudentID:    5,
		InstrumentID: 2,
		StartDate:    "2026-09-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RentalID != 1 {
		t.Errorf("expected rentalId 1, got %d", resp.RentalID)
	}
	if instruments.instruments[2].IsAvailable {
		t.Error("expected instrument to be unavailable after rental")
	}
}

func TestCreateRentalUnavailableInstrument(t *testing.T) {
	instruments := &mockInstrumentStore{
		instruments: map[int64]*models.Instrument{
			2: {InstrumentID: 2, IsAvailable: false},
		},
		rentals: map[int64]*models.Rental{},
	}

	_, err := newCampusService(instruments).CreateRental(context.Background(), &dto.CreateRentalRequest{
		StudentID:    5,
		InstrumentID: 2,
		StartDate:    "2026-09-01",
	})
	if !errors.Is(err, apperrors.ErrInstrumentUnavailable) {
		t.Fatalf("expected ErrInstrumentUnavailable, got %v", err)
	}
}

func TestCreateRentalBadDate(t *testing.T) {
	instruments := &mockInstrumentStore{
		instruments: map[int64]*models.Instrument{
			2: {InstrumentID: 2, IsAvailable: true},
		},
		rentals: map[int64]*models.Rental{},
	}

	_, err := newCampusService(instruments).CreateRental(context.Background(), &dto.CreateRentalRequest{
		StudentID:    5,
		InstrumentID: 2,
		StartDate:    "09/01/2026",
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected a bad request error, got %v", err)
	}
}

func TestUpdateRentalReturnFreesInstrument(t *testing.T) {
	instruments := &mockInstrumentStore{
		instruments: map[int64]*models.Instrument{
			2: {InstrumentID: 2, IsAvailable: false},
		},
		rentals: map[int64]*models.Rental{
			1: {RentalID: 1, StudentID: 5, InstrumentID: 2},
		},
		patchResult: 1,
	}

	resp, err := newCampusService(instruments).UpdateRental(context.Background(), 1, map[string]interface{}{
		"returnDate": "2026-09-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Updated != 1 {
		t.Errorf("expected updated 1, got %d", resp.Updated)
	}
	if !instruments.instruments[2].IsAvailable {
		t.Error("expected instrument to be available after return")
	}
}

func TestCreateReservationRejectsInvertedWindow(t *testing.T) {
	instruments := &mockInstrumentStore{rentals: map[int64]*models.Rental{}}

	_, err := newCampusService(instruments).CreateReservation(context.Background(), &dto.CreateReservationRequest{
		StudentID:  5,
		RoomNumber: "B-204",
		StartTime:  "2026-09-02T15:00:00Z",
		EndTime:    "2026-09-02T14:00:00Z",
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected a bad request error, got %v", err)
	}
}
