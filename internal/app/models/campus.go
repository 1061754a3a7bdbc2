package models

import "time"

// Club is a student organization.
type Club struct {
	Name        string  `json:"name" db:"name"`
	Category    *string `json:"category,omitempty" db:"category"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Instrument is a rentable inventory item.
type Instrument struct {
	InstrumentID int64  `json:"instrumentId" db:"instrument_id"`
	Name         string `json:"name" db:"name"`
	Type         string `json:"type" db:"type"`
	IsAvailable  bool   `json:"isAvailable" db:"is_available"`
}

// Rental links a student to an instrument for a date range. ReturnDate is
// NULL while the rental is open.
type Rental struct {
	RentalID     int64      `json:"rentalId" db:"rental_id"`
	StudentID    int64      `json:"studentId" db:"student_id"`
	InstrumentID int64      `json:"instrumentId" db:"instrument_id"`
	StartDate    time.Time  `json:"startDate" db:"start_date"`
	ReturnDate   *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

// Classroom is keyed by room number and carries its maintenance timestamp.
type Classroom struct {
	RoomNumber     string     `json:"roomNumber" db:"room_number"`
	Status         bool       `json:"status" db:"status"`
	LastMaintained *time.Time `json:"lastMaintained,omitempty" db:"last_maintained"`
}

// Reservation books a classroom for a student over a time window.
type Reservation struct {
	ReserveID  int64     `json:"reserveId" db:"reserve_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	RoomNumber string    `json:"roomNumber" db:"room_number"`
	StartTime  time.Time `json:"startTime" db:"start_time"`
	EndTime    time.Time `json:"endTime" db:"end_time"`
}

// Alumnus extends a student record after graduation.
type Alumnus struct {
	StudentID int64 `json:"studentId" db:"student_id"`
	HasJob    bool  `json:"hasJob" db:"has_job"`
}
