package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
)

// mockStudentService records the payload handed down by the controller.
type mockStudentService struct {
	lastPayload map[string]interface{}
	updated     int
}

func (m *mockStudentService) GetStudents(ctx context.Context, filter *dto.StudentFilter) ([]dto.StudentRow, error) {
	return []dto.StudentRow{}, nil
}
func (m *mockStudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	return &dto.CreateStudentResponse{UserID: req.UserID}, nil
}
func (m *mockStudentService) UpdateStudent(ctx context.Context, userID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error) {
	m.lastPayload = payload
	return &dto.UpdatedResponse{Updated: m.updated}, nil
}
func (m *mockStudentService) DeleteStudent(ctx context.Context, userID int64) error { return nil }
func (m *mockStudentService) GetStudentGPA(ctx context.Context, userID int64) (*dto.GPAResponse, error) {
	return &dto.GPAResponse{}, nil
}
func (m *mockStudentService) GetAllGPAs(ctx context.Context) ([]float64, error) { return nil, nil }
func (m *mockStudentService) GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error) {
	return nil, nil
}
func (m *mockStudentService) GetAdvisorEmail(ctx context.Context, userID int64) (*dto.AdvisorEmailResponse, error) {
	return &dto.AdvisorEmailResponse{}, nil
}
func (m *mockStudentService) GetClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error) {
	return nil, nil
}

func newStudentRouter(svc *mockStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(svc)
	router.PATCH("/api/v1/students/:userId", controller.UpdateStudent)
	router.DELETE("/api/v1/students/:userId", controller.DeleteStudent)
	return router
}

func TestUpdateStudentNoRecognizedFields(t *testing.T) {
	svc := &mockStudentService{updated: 0}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/students/7",
		strings.NewReader(`{"shoeSize": 43}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data dto.UpdatedResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Updated != 0 {
		t.Errorf("expected updated 0, got %d", resp.Data.Updated)
	}
	if _, ok := svc.lastPayload["shoeSize"]; !ok {
		t.Error("expected raw payload forwarded to the service")
	}
}

func TestUpdateStudentInvalidJSON(t *testing.T) {
	router := newStudentRouter(&mockStudentService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/students/7",
		strings.NewReader(`{"year": `))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteStudentReturns204(t *testing.T) {
	router := newStudentRouter(&mockStudentService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/students/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}

func TestDeleteStudentInvalidID(t *testing.T) {
	router := newStudentRouter(&mockStudentService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/students/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
