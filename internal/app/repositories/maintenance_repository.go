package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// MaintenancePatchSpec is the allow-list of updatable work order columns.
var MaintenancePatchSpec = PatchSpec{
	Table:   "maintenance_request",
	Allowed: []string{"address", "problemType", "state", "description", "studentId"},
	Columns: map[string]string{
		"problemType": "problem_type",
		"studentId":   "student_id",
	},
	KeyCol: "order_id",
}

// MaintenanceRepository handles work order database operations
type MaintenanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves work orders with the assigned staff, the requester's name
// and the attached tools rolled up into one string. Nil filters impose no
// constraint.
func (r *MaintenanceRepository) List(ctx context.Context, staffID, studentID *int64) ([]models.MaintenanceRequestRow, error) {
	query := r.sb.Select(
		"mr.order_id", "mr.address", "mr.problem_type", "mr.state",
		"mr.submitted", "mr.description",
		"sr.staff_id", "u.first_name", "u.last_name",
		"STRING_AGG(DISTINCT mrt.tool, ', ') AS tools").
		From("maintenance_request mr").
		LeftJoin("maintenance_staffs_maintenance_request sr ON sr.order_id = mr.order_id").
		LeftJoin("users u ON u.user_id = mr.student_id").
		LeftJoin("maintenance_request_tools mrt ON mrt.order_id = mr.order_id").
		GroupBy("mr.order_id", "sr.staff_id", "u.first_name", "u.last_name").
		OrderBy("mr.submitted DESC")

	if staffID != nil {
		query = query.Where(squirrel.Eq{"sr.staff_id": *staffID})
	}
	if studentID != nil {
		query = query.Where(squirrel.Eq{"mr.student_id": *studentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list maintenance requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list maintenance requests query")
		return nil, fmt.Errorf("error querying maintenance requests: %w", err)
	}
	defer rows.Close()

	requests := []models.MaintenanceRequestRow{}
	for rows.Next() {
		var req models.MaintenanceRequestRow
		if err := rows.Scan(
			&req.OrderID, &req.Address, &req.ProblemType, &req.State,
			&req.Submitted, &req.Description,
			&req.StaffID, &req.FirstName, &req.LastName, &req.Tools); err != nil {
			return nil, fmt.Errorf("error scanning maintenance request row: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// Create inserts a work order in its initial state and returns the
// generated order id.
func (r *MaintenanceRepository) Create(ctx context.Context, req *models.MaintenanceRequest) (int64, error) {
	sql, args, err := r.sb.Insert("maintenance_request").
		Columns("address", "problem_type", "description", "submitted", "state", "student_id").
		Values(req.Address, req.ProblemType, req.Description, req.Submitted, req.State, req.StudentID).
		Suffix("RETURNING order_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create maintenance request query: %w", err)
	}

	var orderID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&orderID); err != nil {
		logger.Error().Err(err).Int64("studentID", req.StudentID).Msg("Error executing create maintenance request query")
		return 0, fmt.Errorf("error creating maintenance request: %w", err)
	}

	return orderID, nil
}

// PartialUpdate applies the recognized payload fields to a work order.
// It returns 1 when a statement was executed and 0 for the recognized-field
// free no-op.
func (r *MaintenanceRepository) PartialUpdate(ctx context.Context, orderID int64, payload map[string]interface{}) (int, error) {
	sql, args, fields, err := BuildPartialUpdate(r.sb, MaintenancePatchSpec, payload, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to build update maintenance request query: %w", err)
	}
	if fields == 0 {
		return 0, nil
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("orderID", orderID).Msg("Error executing update maintenance request query")
		return 0, fmt.Errorf("error updating maintenance request: %w", err)
	}

	logger.Debug().Int64("orderID", orderID).Int64("rows", cmdTag.RowsAffected()).Msg("Maintenance request updated")
	return 1, nil
}

// Delete removes a work order and its dependent assignment and tool rows.
// Deleting an absent id is a silent no-op.
func (r *MaintenanceRepository) Delete(ctx context.Context, orderID int64) error {
	for _, table := range []string{"maintenance_request_tools", "maintenance_staffs_maintenance_request", "maintenance_request"} {
		sql, args, err := r.sb.Delete(table).
			Where(squirrel.Eq{"order_id": orderID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete maintenance request query: %w", err)
		}
		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("orderID", orderID).Str("table", table).Msg("Error executing delete maintenance request query")
			return fmt.Errorf("error deleting maintenance request: %w", err)
		}
	}

	return nil
}

// StaffHours returns the logged work hours of one staffer across orders.
func (r *MaintenanceRepository) StaffHours(ctx context.Context, staffID int64) ([]models.WorkHoursEntry, error) {
	sql, args, err := r.sb.Select(
		"sr.order_id", "sr.work_hours", "mr.problem_type", "mr.state", "mr.submitted").
		From("maintenance_staffs_maintenance_request sr").
		Join("maintenance_request mr ON mr.order_id = sr.order_id").
		Where(squirrel.Eq{"sr.staff_id": staffID}).
		OrderBy("mr.submitted DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staff hours query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Msg("Error executing staff hours query")
		return nil, fmt.Errorf("error querying staff hours: %w", err)
	}
	defer rows.Close()

	entries := []models.WorkHoursEntry{}
	for rows.Next() {
		var entry models.WorkHoursEntry
		if err := rows.Scan(&entry.OrderID, &entry.WorkHours, &entry.ProblemType,
			&entry.State, &entry.Submitted); err != nil {
			return nil, fmt.Errorf("error scanning staff hours row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListTools returns the tools attached to a work order with the current
// inventory amount joined in.
func (r *MaintenanceRepository) ListTools(ctx context.Context, orderID int64) ([]models.RequestTool, error) {
	sql, args, err := r.sb.Select("mrt.tool", "t.amount").
		From("maintenance_request_tools mrt").
		Join("tools t ON t.product_name = mrt.tool").
		Where(squirrel.Eq{"mrt.order_id": orderID}).
		OrderBy("mrt.tool").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list request tools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying request tools: %w", err)
	}
	defer rows.Close()

	tools := []models.RequestTool{}
	for rows.Next() {
		var tool models.RequestTool
		if err := rows.Scan(&tool.Tool, &tool.Amount); err != nil {
			return nil, fmt.Errorf("error scanning request tool row: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

// AttachTool links a tool to a work order.
func (r *MaintenanceRepository) AttachTool(ctx context.Context, orderID int64, tool string) error {
	sql, args, err := r.sb.Insert("maintenance_request_tools").
		Columns("order_id", "tool").
		Values(orderID, tool).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build attach tool query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("orderID", orderID).Str("tool", tool).Msg("Error executing attach tool query")
		return fmt.Errorf("error attaching tool: %w", err)
	}

	return nil
}

// DetachTool unlinks a tool from a work order. Detaching an absent link is
// a silent no-op.
func (r *MaintenanceRepository) DetachTool(ctx context.Context, orderID int64, tool string) error {
	sql, args, err := r.sb.Delete("maintenance_request_tools").
		Where(squirrel.Eq{"order_id": orderID, "tool": tool}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build detach tool query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("orderID", orderID).Str("tool", tool).Msg("Error executing detach tool query")
		return fmt.Errorf("error detaching tool: %w", err)
	}

	return nil
}
