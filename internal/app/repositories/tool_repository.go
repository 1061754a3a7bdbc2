package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umut/campusgate/internal/app/models"
	"github.com/umut/campusgate/internal/pkg/logger"
)

// ToolPatchSpec is the allow-list of updatable tool columns.
var ToolPatchSpec = PatchSpec{
	Table:   "tools",
	Allowed: []string{"amount", "productName"},
	Columns: map[string]string{
		"productName": "product_name",
	},
	KeyCol: "product_name",
}

// ToolRepository handles tool inventory database operations
type ToolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewToolRepository creates a new ToolRepository
func NewToolRepository(db *pgxpool.Pool) *ToolRepository {
	return &ToolRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List retrieves the full tool inventory.
func (r *ToolRepository) List(ctx context.Context) ([]models.Tool, error) {
	sql, args, err := r.sb.Select("product_name", "amount").
		From("tools").
		OrderBy("product_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list tools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list tools query")
		return nil, fmt.Errorf("error querying tools: %w", err)
	}
	defer rows.Close()

	tools := []models.Tool{}
	for rows.Next() {
		var tool models.Tool
		if err := rows.Scan(&tool.ProductName, &tool.Amount); err != nil {
			return nil, fmt.Errorf("error scanning tool row: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

// Exists reports whether a tool is present in the inventory.
func (r *ToolRepository) Exists(ctx context.Context, productName string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("tools").
		Where(squirrel.Eq{"product_name": productName}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build tool exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking tool existence: %w", err)
	}

	return true, nil
}

// Create inserts a tool into the inventory.
func (r *ToolRepository) Create(ctx context.Context, tool *models.Tool) error {
	sql, args, err := r.sb.Insert("tools").
		Columns("product_name", "amount").
		Values(tool.ProductName, tool.Amount).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create tool query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("tool", tool.ProductName).Msg("Error executing create tool query")
		return fmt.Errorf("error creating tool: %w", err)
	}

	return nil
}

// PartialUpdate applies the recognized payload fields to one tool. Zero
// recognized fields is a no-op reported as updated 0.
func (r *ToolRepository) PartialUpdate(ctx context.Context, productName string, payload map[string]interface{}) (int, error) {
	sql, args, fields, err := BuildPartialUpdate(r.sb, ToolPatchSpec, payload, productName)
	if err != nil {
		return 0, fmt.Errorf("failed to build update tool query: %w", err)
	}
	if fields == 0 {
		return 0, nil
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tool", productName).Msg("Error executing update tool query")
		return 0, fmt.Errorf("error updating tool: %w", err)
	}

	logger.Debug().Str("tool", productName).Int64("rows", cmdTag.RowsAffected()).Msg("Tool updated")
	return 1, nil
}

// Delete removes a tool from the inventory along with its request links.
// Deleting an absent tool is a silent no-op.
func (r *ToolRepository) Delete(ctx context.Context, productName string) error {
	linkSQL, linkArgs, err := r.sb.Delete("maintenance_request_tools").
		Where(squirrel.Eq{"tool": productName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete tool links query: %w", err)
	}
	if _, err := r.db.Exec(ctx, linkSQL, linkArgs...); err != nil {
		logger.Error().Err(err).Str("tool", productName).Msg("Error executing delete tool links query")
		return fmt.Errorf("error deleting tool links: %w", err)
	}

	sql, args, err := r.sb.Delete("tools").
		Where(squirrel.Eq{"product_name": productName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete tool query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("tool", productName).Msg("Error executing delete tool query")
		return fmt.Errorf("error deleting tool: %w", err)
	}

	return nil
}
