package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	MaintenanceRepository *MaintenanceRepository
	ToolRepository        *ToolRepository
	ClubRepository        *ClubRepository
	InstrumentRepository  *InstrumentRepository
	ClassroomRepository   *ClassroomRepository
	CollegeRepository     *CollegeRepository
	MetricsRepository     *MetricsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		ToolRepository:        NewToolRepository(db),
		ClubRepository:        NewClubRepository(db),
		InstrumentRepository:  NewInstrumentRepository(db),
		ClassroomRepository:   NewClassroomRepository(db),
		CollegeRepository:     NewCollegeRepository(db),
		MetricsRepository:     NewMetricsRepository(db),
	}
}

// statementBuilder returns the squirrel builder configured for pgx's
// dollar placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
