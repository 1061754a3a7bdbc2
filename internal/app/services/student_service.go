package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
)

// studentStore is the slice of the student repository the service needs.
type studentStore interface {
	List(ctx context.Context, college, year string) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	PartialUpdate(ctx context.Context, userID int64, payload map[string]interface{}) (int, error)
	Delete(ctx context.Context, userID int64) error
	GetGPA(ctx context.Context, userID int64) (*float64, error)
	ListGPAs(ctx context.Context) ([]float64, error)
	GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error)
	GetAdvisorEmail(ctx context.Context, userID int64) (*string, error)
	ListClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error)
}

// StudentService defines the interface for student operations
type StudentService interface {
	GetStudents(ctx context.Context, filter *dto.StudentFilter) ([]dto.StudentRow, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error)
	UpdateStudent(ctx context.Context, userID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error)
	DeleteStudent(ctx context.Context, userID int64) error
	GetStudentGPA(ctx context.Context, userID int64) (*dto.GPAResponse, error)
	GetAllGPAs(ctx context.Context) ([]float64, error)
	GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error)
	GetAdvisorEmail(ctx context.Context, userID int64) (*dto.AdvisorEmailResponse, error)
	GetClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	students studentStore
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students studentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students: students,
		logger:   logger,
	}
}

// GetStudents lists students flattened with their user identity.
func (s *studentServiceImpl) GetStudents(ctx context.Context, filter *dto.StudentFilter) ([]dto.StudentRow, error) {
	students, err := s.students.List(ctx, filter.College, filter.Year)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StudentRow, 0, len(students))
	for _, student := range students {
		row := dto.StudentRow{
			UserID:        student.UserID,
			College:       student.College,
			Year:          student.Year,
			GPA:           student.GPA,
			HousingStatus: student.HousingStatus,
			Race:          student.Race,
			Income:        student.Income,
			Origin:        student.Origin,
			Advisor:       student.Advisor,
		}
		if student.User != nil {
			row.FirstName = student.User.FirstName
			row.LastName = student.User.LastName
			row.Email = student.User.Email
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CreateStudent inserts a student record for an existing user.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	student := &models.Student{
		UserID:        req.UserID,
		College:       req.College,
		Year:          req.Year,
		HousingStatus: req.HousingStatus,
		Race:          req.Race,
		Income:        req.Income,
		Origin:        req.Origin,
		Advisor:       req.Advisor,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", req.UserID).Msg("Student record created")
	return &dto.CreateStudentResponse{UserID: req.UserID}, nil
}

// UpdateStudent applies a partial update. Payloads with no recognized fields
// report zero updates without touching the database.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, userID int64, payload map[string]interface{}) (*dto.UpdatedResponse, error) {
	updated, err := s.students.PartialUpdate(ctx, userID, payload)
	if err != nil {
		return nil, err
	}
	return &dto.UpdatedResponse{Updated: updated}, nil
}

// DeleteStudent removes a student record. Absent ids delete as a no-op.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, userID int64) error {
	return s.students.Delete(ctx, userID)
}

// GetStudentGPA returns a student's GPA, null when unrecorded.
func (s *studentServiceImpl) GetStudentGPA(ctx context.Context, userID int64) (*dto.GPAResponse, error) {
	gpa, err := s.students.GetGPA(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.GPAResponse{GPA: gpa}, nil
}

// GetAllGPAs returns every recorded GPA.
func (s *studentServiceImpl) GetAllGPAs(ctx context.Context) ([]float64, error) {
	return s.students.ListGPAs(ctx)
}

// GetSchedule returns a student's class schedule.
func (s *studentServiceImpl) GetSchedule(ctx context.Context, userID int64) ([]models.ScheduleEntry, error) {
	return s.students.GetSchedule(ctx, userID)
}

// GetAdvisorEmail returns the student's advisor contact, null when the
// student has no advisor.
func (s *studentServiceImpl) GetAdvisorEmail(ctx context.Context, userID int64) (*dto.AdvisorEmailResponse, error) {
	email, err := s.students.GetAdvisorEmail(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.AdvisorEmailResponse{AdvisorEmail: email}, nil
}

// GetClubs returns a student's club memberships.
func (s *studentServiceImpl) GetClubs(ctx context.Context, userID int64) ([]models.ClubMembership, error) {
	return s.students.ListClubs(ctx, userID)
}
