package dto

// CreateRentalRequest opens an instrument rental. ReturnDate may be sent up
// front for fixed-term rentals; dates use YYYY-MM-DD.
type CreateRentalRequest struct {
	StudentID    int64   `json:"studentId" binding:"required,gt=0"`
	InstrumentID int64   `json:"instrumentId" binding:"required,gt=0"`
	StartDate    string  `json:"startDate" binding:"required"`
	ReturnDate   *string `json:"returnDate"`
}

// CreateRentalResponse returns the generated rental id
type CreateRentalResponse struct {
	RentalID int64 `json:"rentalId"`
}

// CreateReservationRequest books a classroom time slot. Times use RFC 3339.
type CreateReservationRequest struct {
	StudentID  int64  `json:"studentId" binding:"required,gt=0"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
}

// CreateReservationResponse returns the generated reservation id
type CreateReservationResponse struct {
	ReserveID int64 `json:"reserveId"`
}

// CreateCollegeRequest opens a college record
type CreateCollegeRequest struct {
	CollegeName string   `json:"collegeName" binding:"required"`
	Dean        *int64   `json:"dean"`
	Budget      *float64 `json:"budget"`
	Status      *bool    `json:"status"`
}

// CreateCollegeResponse echoes the created college's key
type CreateCollegeResponse struct {
	CollegeName string `json:"collegeName"`
}
