package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/umut/campusgate/internal/app/models"
	appRepos "github.com/umut/campusgate/internal/app/repositories"
)

// CreateDefaultData creates the default college, persona accounts and
// reference rows used by a fresh installation. Safe to call on every
// startup; rows that already exist are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	toolRepo := appRepos.NewToolRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	seedUser := func(firstName, lastName, email, password string, role appModels.Role) int64 {
		exists, err := userRepo.EmailExists(ctx, email)
		if err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error checking if user exists")
			finalErr = errors.Join(finalErr, err)
			return 0
		}
		if exists {
			user, err := userRepo.GetByEmail(ctx, email)
			if err != nil {
				finalErr = errors.Join(finalErr, err)
				return 0
			}
			return user.UserID
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error hashing password")
			finalErr = errors.Join(finalErr, err)
			return 0
		}

		userID, err := userRepo.Create(ctx, &appModels.User{
			FirstName:    firstName,
			LastName:     lastName,
			Email:        email,
			PasswordHash: string(hashed),
			Role:         role,
		})
		if err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, err)
			return 0
		}
		lgr.Info().Int64("userID", userID).Str("email", email).Msg("Default user created")
		return userID
	}

	presidentID := seedUser("Pat", "Whitfield", "president@campusgate.edu", "President123!", appModels.RolePresident)
	deanID := seedUser("Dana", "Okafor", "dean.engineering@campusgate.edu", "Dean123!", appModels.RoleDean)
	advisorID := seedUser("Alex", "Ferris", "advisor@campusgate.edu", "Advisor123!", appModels.RoleAdvisor)
	staffID := seedUser("Morgan", "Reyes", "maintenance@campusgate.edu", "Staff123!", appModels.RoleMaintenance)
	studentID := seedUser("Jamie", "Lund", "student@campusgate.edu", "Student123!", appModels.RoleStudent)
	_ = presidentID

	// --- Default College --- //
	const collegeName = "Engineering"
	collegeExists, err := collegeRepo.Exists(ctx, collegeName)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default college")
		finalErr = errors.Join(finalErr, err)
	} else if !collegeExists {
		budget := 500000.0
		college := &appModels.College{CollegeName: collegeName, Budget: &budget, Status: true}
		if deanID > 0 {
			college.Dean = &deanID
		}
		if err := collegeRepo.Create(ctx, college); err != nil {
			lgr.Error().Err(err).Msg("Error creating default college")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("college", collegeName).Msg("Default college created")
		}
	}

	// --- Student profile and staff roster rows --- //
	if studentID > 0 {
		_, err = dbPool.Exec(ctx, `
			INSERT INTO students (user_id, college, year, gpa, housing_status, race, income, origin, advisor)
			VALUES ($1, $2, 'Sophomore', 3.40, 'On Campus', 'Unreported', 'Middle', 'In State', $3)
			ON CONFLICT (user_id) DO NOTHING`,
			studentID, collegeName, nullableID(advisorID))
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default student profile")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if staffID > 0 {
		_, err = dbPool.Exec(ctx,
			`INSERT INTO maintenance_staffs (staff_id) VALUES ($1) ON CONFLICT (staff_id) DO NOTHING`,
			staffID)
		if err != nil {
			lgr.Error().Err(err).Msg("Error adding default maintenance staff")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Tool inventory --- //
	for _, tool := range []appModels.Tool{
		{ProductName: "Wrench", Amount: 12},
		{ProductName: "Ladder", Amount: 4},
	} {
		exists, err := toolRepo.Exists(ctx, tool.ProductName)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !exists {
			if err := toolRepo.Create(ctx, &tool); err != nil {
				lgr.Error().Err(err).Str("tool", tool.ProductName).Msg("Error creating default tool")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Campus reference rows --- //
	referenceRows := []struct {
		desc string
		sql  string
	}{
		{"default clubs", `
			INSERT INTO clubs (name, category, description) VALUES
				('Chess Club', 'Games', 'Weekly blitz tournaments'),
				('Robotics Society', 'Engineering', 'Builds competition robots')
			ON CONFLICT (name) DO NOTHING`},
		{"default instruments", `
			INSERT INTO instruments (name, type, is_available)
			SELECT v.name, v.type, TRUE
			FROM (VALUES ('Yamaha Upright', 'Piano'), ('Fender Stratocaster', 'Guitar')) AS v(name, type)
			WHERE NOT EXISTS (SELECT 1 FROM instruments i WHERE i.name = v.name)`},
		{"default classrooms", `
			INSERT INTO classrooms (room_number, status, last_maintained) VALUES
				('ENG-101', TRUE, NOW() - INTERVAL '2 months'),
				('ENG-202', FALSE, NOW() - INTERVAL '8 months')
			ON CONFLICT (room_number) DO NOTHING`},
		{"default rankings", `
			INSERT INTO school_rankings (school_name, ranking) VALUES
				('CampusGate University', 42)
			ON CONFLICT (school_name) DO NOTHING`},
	}
	for _, row := range referenceRows {
		if _, err := dbPool.Exec(ctx, row.sql); err != nil {
			lgr.Error().Err(err).Str("rows", row.desc).Msg("Error seeding reference rows")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
