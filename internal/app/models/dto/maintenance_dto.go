package dto

import "github.com/umut/campusgate/internal/app/models"

// CreateMaintenanceRequestRequest carries a new work order. All fields are
// required; the original intake form does not accept partial submissions.
type CreateMaintenanceRequestRequest struct {
	Address     string `json:"address" binding:"required"`
	ProblemType string `json:"problemType" binding:"required"`
	Description string `json:"description" binding:"required"`
	StudentID   int64  `json:"studentId" binding:"required,gt=0"`
}

// CreateMaintenanceRequestResponse returns the generated order id
type CreateMaintenanceRequestResponse struct {
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

// AttachToolRequest names the tool to attach to a work order
type AttachToolRequest struct {
	Tool string `json:"tool" binding:"required"`
}

// AttachToolResponse acknowledges a tool attachment
type AttachToolResponse struct {
	Attached bool `json:"attached"`
}

// StaffHoursResponse lists logged work hours for one staffer
type StaffHoursResponse struct {
	StaffID int64                   `json:"staffId"`
	Entries []models.WorkHoursEntry `json:"entries"`
}

// CreateToolRequest carries a new inventory tool
type CreateToolRequest struct {
	ProductName string `json:"productName" binding:"required"`
	Amount      int    `json:"amount"`
}
