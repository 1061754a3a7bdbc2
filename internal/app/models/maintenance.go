package models

import "time"

// MaintenanceRequest is a work order submitted by a student.
type MaintenanceRequest struct {
	OrderID     int64     `json:"orderId" db:"order_id"`
	Address     string    `json:"address" db:"address"`
	ProblemType string    `json:"problemType" db:"problem_type"`
	Description string    `json:"description" db:"description"`
	Submitted   time.Time `json:"submitted" db:"submitted"`
	State       string    `json:"state" db:"state"`
	StudentID   int64     `json:"studentId" db:"student_id"`
}

// MaintenanceRequestRow is the joined listing shape: the request plus the
// assigned staff, the requesting user's name and the attached tools rolled
// up into one comma-separated string.
type MaintenanceRequestRow struct {
	OrderID     int64     `json:"orderId" db:"order_id"`
	Address     string    `json:"address" db:"address"`
	ProblemType string    `json:"problemType" db:"problem_type"`
	State       string    `json:"state" db:"state"`
	Submitted   time.Time `json:"submitted" db:"submitted"`
	Description string    `json:"description" db:"description"`
	StaffID     *int64    `json:"staffId,omitempty" db:"staff_id"`
	FirstName   *string   `json:"firstName,omitempty" db:"first_name"`
	LastName    *string   `json:"lastName,omitempty" db:"last_name"`
	Tools       *string   `json:"tools,omitempty" db:"tools"`
}

// WorkHoursEntry is one logged assignment of a staffer to an order.
type WorkHoursEntry struct {
	OrderID     int64     `json:"orderId" db:"order_id"`
	WorkHours   float64   `json:"workHours" db:"work_hours"`
	ProblemType string    `json:"problemType" db:"problem_type"`
	State       string    `json:"state" db:"state"`
	Submitted   time.Time `json:"submitted" db:"submitted"`
}

// Tool is an inventory row keyed by product name.
type Tool struct {
	ProductName string `json:"productName" db:"product_name"`
	Amount      int    `json:"amount" db:"amount"`
}

// RequestTool is a tool attached to a maintenance request, with the
// current inventory amount joined in.
type RequestTool struct {
	Tool   string `json:"tool" db:"tool"`
	Amount int    `json:"amount" db:"amount"`
}
