package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/apperrors"
)

// StateSubmitted is the initial state of every new work order.
const StateSubmitted = "Submitted"

// maintenanceStore is the slice of the maintenance repository the service needs.
type maintenanceStore interface {
	List(ctx context.Context, staffID, studentID *int64) ([]models.MaintenanceRequestRow, error)
	Create(ctx context.Context, req *models.MaintenanceRequest) (int64, error)
	PartialUpdate(ctx context.Context, orderID int64, payload map[string]interface{}) (int, error)
	Delete(ctx context.Context, orderID int64) error
	StaffHours(ctx context.Context, staffID int64) ([]models.WorkHoursEntry, error)
	ListTools(ctx context.Context, orderID int64) ([]models.RequestTool, error)
	AttachTool(ctx context.Context, orderID int64, tool string) error
	DetachTool(ctx context.Context, orderID int64, tool string) error
}

// toolChecker is the slice of the tool repository the service needs.
type toolChecker interface {
	Exists(ctx context.Context, productName string) (bool, error)
}

// MaintenanceService defines the interface for work order operations
type MaintenanceService interface {
	GetRequests(ctx context.Context, staffID, studentID *int64) ([]models.MaintenanceRequestRow, error)
	CreateRequest(ctx context.Context, req *dto.CreateMaintenanceRequestRequest) (*dto.CreateMaintenanceRequestResponse, error)
	UpdateRequest(ctx context.Context, orderID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error)
	DeleteRequest(ctx context.Context, orderID int64) error
	GetStaffHours(ctx context.Context, staffID int64) (*dto.StaffHoursResponse, error)
	GetRequestTools(ctx context.Context, orderID int64) ([]models.RequestTool, error)
	AttachTool(ctx context.Context, orderID int64, req *dto.AttachToolRequest) error
	DetachTool(ctx context.Context, orderID int64, tool string) error
}

// maintenanceServiceImpl implements MaintenanceService
type maintenanceServiceImpl struct {
	requests maintenanceStore
	tools    toolChecker
	logger   zerolog.Logger
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(requests maintenanceStore, tools toolChecker, logger zerolog.Logger) MaintenanceService {
	return &maintenanceServiceImpl{
		requests: requests,
		tools:    tools,
		logger:   logger,
	}
}

// GetRequests lists work orders with optional staff and student filters.
func (s *maintenanceServiceImpl) GetRequests(ctx context.Context, staffID, studentID *int64) ([]models.MaintenanceRequestRow, error) {
	return s.requests.List(ctx, staffID, studentID)
}

// CreateRequest opens a work order in the submitted state.
func (s *maintenanceServiceImpl) CreateRequest(ctx context.Context, req *dto.CreateMaintenanceRequestRequest) (*dto.CreateMaintenanceRequestResponse, error) {
	order := &models.MaintenanceRequest{
		Address:     req.Address,
		ProblemType: req.ProblemType,
		Description: req.Description,
		Submitted:   time.Now(),
		State:       StateSubmitted,
		StudentID:   req.StudentID,
	}

	orderID, err := s.requests.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("orderID", orderID).Int64("studentID", req.StudentID).Msg("Maintenance request created")
	return &dto.CreateMaintenanceRequestResponse{
		OrderID: orderID,
		Message: "Maintenance request submitted",
	}, nil
}

// UpdateRequest applies a partial update. Payloads with no recognized fields
// report zero updates without touching the database.
func (s *maintenanceServiceImpl) UpdateRequest(ctx context.Context, orderID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error) {
	updated, err := s.requests.PartialUpdate(ctx, orderID, payload)
	if err != nil {
		return nil, err
	}
	return &dto.UpdatedResponse{Updated: updated}, nil
}

// DeleteRequest removes a work order. Absent ids delete as a no-op.
func (s *maintenanceServiceImpl) DeleteRequest(ctx context.Context, orderID int64) error {
	return s.requests.Delete(ctx, orderID)
}

// GetStaffHours lists one staffer's logged hours across orders.
func (s *maintenanceServiceImpl) GetStaffHours(ctx context.Context, staffID int64) (*dto.StaffHoursResponse, error) {
	entries, err := s.requests.StaffHours(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return &dto.StaffHoursResponse{StaffID: staffID, Entries: entries}, nil
}

// GetRequestTools lists the tools attached to a work order.
func (s *maintenanceServiceImpl) GetRequestTools(ctx context.Context, orderID int64) ([]models.RequestTool, error) {
	return s.requests.ListTools(ctx, orderID)
}

// AttachTool links an inventory tool to a work order. The tool must exist.
func (s *maintenanceServiceImpl) AttachTool(ctx context.Context, orderID int64, req *dto.AttachToolRequest) error {
	exists, err := s.tools.Exists(ctx, req.Tool)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrToolNotFound
	}

	return s.requests.AttachTool(ctx, orderID, req.Tool)
}

// DetachTool unlinks a tool from a work order. Absent links detach as a
// no-op.
func (s *maintenanceServiceImpl) DetachTool(ctx context.Context, orderID int64, tool string) error {
	return s.requests.DetachTool(ctx, orderID, tool)
}
