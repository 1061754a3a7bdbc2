package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/pkg/apperrors"
)

// collegeStore is the slice of the college repository the service needs.
type collegeStore interface {
	List(ctx context.Context) ([]models.College, error)
	Exists(ctx context.Context, collegeName string) (bool, error)
	Create(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, collegeName string) error
	ListRankings(ctx context.Context) ([]models.SchoolRanking, error)
	ListAdvisors(ctx context.Context) ([]models.User, error)
}

// CollegeService defines the interface for college operations
type CollegeService interface {
	GetColleges(ctx context.Context) ([]models.College, error)
	CreateCollege(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CreateCollegeResponse, error)
	DeleteCollege(ctx context.Context, collegeName string) error
	GetRankings(ctx context.Context) ([]models.SchoolRanking, error)
	GetAdvisors(ctx context.Context) ([]dto.UserResponse, error)
}

// collegeServiceImpl implements CollegeService
type collegeServiceImpl struct {
	colleges collegeStore
	logger   zerolog.Logger
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(colleges collegeStore, logger zerolog.Logger) CollegeService {
	return &collegeServiceImpl{
		colleges: colleges,
		logger:   logger,
	}
}

// GetColleges lists all colleges.
func (s *collegeServiceImpl) GetColleges(ctx context.Context) ([]models.College, error) {
	return s.colleges.List(ctx)
}

// CreateCollege opens a college record. College names are unique.
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CreateCollegeResponse, error) {
	exists, err := s.colleges.Exists(ctx, req.CollegeName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCollegeAlreadyExists
	}

	college := &models.College{
		CollegeName: req.CollegeName,
		Dean:        req.Dean,
		Budget:      req.Budget,
	}
	if req.Status != nil {
		college.Status = *req.Status
	}

	if err := s.colleges.Create(ctx, college); err != nil {
		return nil, err
	}

	s.logger.Info().Str("college", req.CollegeName).Msg("College created")
	return &dto.CreateCollegeResponse{CollegeName: req.CollegeName}, nil
}

// DeleteCollege removes a college. Absent names delete as a no-op.
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, collegeName string) error {
	return s.colleges.Delete(ctx, collegeName)
}

// GetRankings lists school rankings best first.
func (s *collegeServiceImpl) GetRankings(ctx context.Context) ([]models.SchoolRanking, error) {
	return s.colleges.ListRankings(ctx)
}

// GetAdvisors lists every advisor account.
func (s *collegeServiceImpl) GetAdvisors(ctx context.Context) ([]dto.UserResponse, error) {
	advisors, err := s.colleges.ListAdvisors(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(advisors))
	for i := range advisors {
		responses = append(responses, toUserResponse(&advisors[i]))
	}
	return responses, nil
}
