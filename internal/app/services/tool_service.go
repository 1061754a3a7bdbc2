package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/apperrors"
)

// toolStore is the slice of the tool repository the service needs.
type toolStore interface {
	List(ctx context.Context) ([]models.Tool, error)
	Exists(ctx context.Context, productName string) (bool, error)
	Create(ctx context.Context, tool *models.Tool) error
	PartialUpdate(ctx context.Context, productName string, payload map[string]interface{}) (int, error)
	Delete(ctx context.Context, productName string) error
}

// ToolService defines the interface for tool inventory operations
type ToolService interface {
	GetTools(ctx context.Context) ([]models.Tool, error)
	CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, productName string, payload map[string]interface{}) (*dto.UpdatedResponse, error)
	DeleteTool(ctx context.Context, productName string) error
}

// toolServiceImpl implements ToolService
type toolServiceImpl struct {
	tools  toolStore
	logger zerolog.Logger
}

// NewToolService creates a new ToolService
func NewToolService(tools toolStore, logger zerolog.Logger) ToolService {
	return &toolServiceImpl{
		tools:  tools,
		logger: logger,
	}
}

// GetTools lists the full inventory.
func (s *toolServiceImpl) GetTools(ctx context.Context) ([]models.Tool, error) {
	return s.tools.List(ctx)
}

// CreateTool adds a tool to the inventory. Product names are unique.
func (s *toolServiceImpl) CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*models.Tool, error) {
	exists, err := s.tools.Exists(ctx, req.ProductName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrToolExists
	}

	tool := &models.Tool{ProductName: req.ProductName, Amount: req.Amount}
	if err := s.tools.Create(ctx, tool); err != nil {
		return nil, err
	}

	s.logger.Info().Str("tool", req.ProductName).Int("amount", req.Amount).Msg("Tool created")
	return tool, nil
}

// UpdateTool applies the recognized payload fields to one tool. Payloads
// without recognized fields report updated 0.
func (s *toolServiceImpl) UpdateTool(ctx context.Context, productName string, payload map[string]interface{}) (*dto.UpdatedResponse, error) {
	updated, err := s.tools.PartialUpdate(ctx, productName, payload)
	if err != nil {
		return nil, err
	}
	return &dto.UpdatedResponse{Updated: updated}, nil
}

// DeleteTool removes a tool from the inventory. Absent tools delete as a
// no-op.
func (s *toolServiceImpl) DeleteTool(ctx context.Context, productName string) error {
	return s.tools.Delete(ctx, productName)
}
