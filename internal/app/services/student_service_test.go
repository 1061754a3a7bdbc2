package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
)

// mockStudentStore returns canned rows and records the last patch payload.
type mockStudentStore struct {
	students    []*models.Student
	created     *models.Student
	patched     map[string]interface{}
	patchResult int
	deleted     []int64
	gpa         *float64
}

func (m *mockStudentStore) List(ctx context.Context, college, year string) ([]*models.Student, error) {
	return m.students, nil
}
func (m *mockStudentStore) Create(ctx context.Context, student *models.Student) error {
	m.created = student
	return nil
}
func (m *mockStudentStore) PartialUpdate(ctx context.Context, userID int64, payload map[string]interface{}) (int, error) {
	m.patched = payload
	return m.patchResult, nil
}
func (m *mockStudentStore) Delete(ctx context.Context, userID int64) error {
	m.deleted = append(m.deleted, userID)
	return nil
}
func (m *mockStudentStore) GetGPA(ctx context.Context, userID int64) (*float64, error) {
	return m.gpa, nil
}
func (m *mockStudentStore) ListGPAs(ctx context.Context) ([]float64, error) { return nil, nil }
func (m *mockStudentStore) GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error) {
	return nil, nil
}
func (m *mockStudentStore) GetAdvisorEmail(ctx context.Context, userID int64) (*string, error) {
	return nil, nil
}
func (m *mockStudentStore) ListClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestGetStudentsFlattensUserIdentity(t *testing.T) {
	store := &mockStudentStore{students: []*models.Student{
		{
			UserID:  1,
			College: strPtr("Engineering"),
			User:    &models.User{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@campus.edu"},
		},
	}}
	svc := NewStudentService(store, zerolog.Nop())

	rows, err := svc.GetStudents(context.Background(), &dto.StudentFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].FirstName != "Ada" || rows[0].Email != "ada@campus.edu" {
		t.Errorf("expected user identity flattened into row, got %+v", rows[0])
	}
	if rows[0].College == nil || *rows[0].College != "Engineering" {
		t.Errorf("expected college Engineering, got %v", rows[0].College)
	}
}

func TestUpdateStudentPropagatesNoOp(t *testing.T) {
	store := &mockStudentStore{patchResult: 0}
	svc := NewStudentService(store, zerolog.Nop())

	resp, err := svc.UpdateStudent(context.Background(), 1, map[string]interface{}{"shoeSize": 43})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Updated != 0 {
		t.Errorf("expected updated 0, got %d", resp.Updated)
	}
}

func TestGetStudentGPANullWhenUnrecorded(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{}, zerolog.Nop())

	resp, err := svc.GetStudentGPA(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GPA != nil {
		t.Errorf("expected null gpa, got %v", *resp.GPA)
	}
}

func TestDeleteStudentAbsentIDIsNoError(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store, zerolog.Nop())

	if err := svc.DeleteStudent(context.Background(), 404); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 404 {
		t.Errorf("expected delete forwarded, got %v", store.deleted)
	}
}
