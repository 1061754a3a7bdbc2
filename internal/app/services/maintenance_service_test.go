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

// mockMaintenanceStore records calls and returns canned values.
type mockMaintenanceStore struct {
	created     *models.MaintenanceRequest
	nextOrderID int64
	patched     map[string]interface{}
	patchResult int
	attached    []string
}

func (m *mockMaintenanceStore) List(ctx context.Context, staffID, studentID *int64) ([]models.MaintenanceRequestRow, error) {
	return nil, nil
}
func (m *mockMaintenanceStore) Create(ctx context.Context, req *models.MaintenanceRequest) (int64, error) {
	m.created = req
	return m.nextOrderID, nil
}
func (m *mockMaintenanceStore) PartialUpdate(ctx context.Context, orderID int64, payload map[string]interface{}) (int, error) {
	m.patched = payload
	return m.patchResult, nil
}
func (m *mockMaintenanceStore) Delete(ctx context.Context, orderID int64) error { return nil }
func (m *mockMaintenanceStore) StaffHours(ctx context.Context, staffID int64) ([]models.WorkHoursEntry, error) {
	return []models.WorkHoursEntry{}, nil
}
func (m *mockMaintenanceStore) ListTools(ctx context.Context, orderID int64) ([]models.RequestTool, error) {
	return nil, nil
}
func (m *mockMaintenanceStore) AttachTool(ctx context.Context, orderID int64, tool string) error {
	m.attached = append(m.attached, tool)
	return nil
}
func (m *mockMaintenanceStore) DetachTool(ctx context.Context, orderID int64, tool string) error {
	return nil
}

// mockToolChecker answers existence checks from a set.
type mockToolChecker struct {
	known map[string]bool
}

func (m *mockToolChecker) Exists(ctx context.Context, productName string) (bool, error) {
	return m.known[productName], nil
}

func TestCreateRequestSetsInitialState(t *testing.T) {
	store := &mockMaintenanceStore{nextOrderID: 17}
	svc := NewMaintenanceService(store, &mockToolChecker{}, zerolog.Nop())

	resp, err := svc.CreateRequest(context.Background(), &dto.CreateMaintenanceRequestRequest{
		Address:     "12 North Hall",
		ProblemType: "Plumbing",
		Description: "Leaking sink",
		StudentID:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.OrderID != 17 {
		t.Errorf("expected orderId 17, got %d", resp.OrderID)
	}
	if resp.Message == "" {
		t.Error("expected a confirmation message")
	}
	if store.created.State != StateSubmitted {
		t.Errorf("expected initial state %q, got %q", StateSubmitted, store.created.State)
	}
	if store.created.Submitted.IsZero() {
		t.Error("expected submission timestamp to be set")
	}
}

func TestUpdateRequestReportsNoOp(t *testing.T) {
	store := &mockMaintenanceStore{patchResult: 0}
	svc := NewMaintenanceService(store, &mockToolChecker{}, zerolog.Nop())

	resp, err := svc.UpdateRequest(context.Background(), 3, map[string]interface{}{"unknown": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Updated != 0 {
		t.Errorf("expected updated 0, got %d", resp.Updated)
	}
}

func TestAttachToolUnknownTool(t *testing.T) {
	store := &mockMaintenanceStore{}
	svc := NewMaintenanceService(store, &mockToolChecker{known: map[string]bool{"Wrench": true}}, zerolog.Nop())

	err := svc.AttachTool(context.Background(), 1, &dto.AttachToolRequest{Tool: "Laser"})
	if !errors.Is(err, apperrors.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if len(store.attached) != 0 {
		t.Error("expected no attachment for unknown tool")
	}

	if err := svc.AttachTool(context.Background(), 1, &dto.AttachToolRequest{Tool: "Wrench"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.attached) != 1 || store.attached[0] != "Wrench" {
		t.Errorf("expected Wrench attached, got %v", store.attached)
	}
}
