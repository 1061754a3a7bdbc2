package dto

import "time"

// APIResponse is the standard envelope for all endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDataResponse wraps payload data in the standard envelope.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// UpdatedResponse reports how many rows a partial update touched. An update
// with no recognized fields is a valid no-op and reports 0.
type UpdatedResponse struct {
	Updated int `json:"updated"`
}

// CreatedResponse carries the generated key of a newly inserted row.
type CreatedResponse struct {
	OrderID  *int64 `json:"orderId,omitempty"`
	RentalID *int64 `json:"rentalId,omitempty"`
	Message  string `json:"message,omitempty"`
}
