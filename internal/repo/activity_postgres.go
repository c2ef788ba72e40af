package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Append(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	query := `INSERT INTO activity_logs
		(id, type, item_id, item_name, quantity, ts, user_id, user_name, notes, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Type, entry.ItemID, entry.ItemName, entry.Quantity,
		entry.Timestamp, entry.UserID, entry.UserName, entry.Notes, entry.OwnerID)
	if err != nil {
		return models.ActivityLog{}, fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return entry, nil
}

func (r *PostgresActivityRepository) List(ctx context.Context, sc scope.Scope, f ActivityFilter) ([]models.ActivityLog, error) {
	query := `SELECT id, type, item_id, item_name, quantity, ts, user_id, user_name, notes, owner_id
		FROM activity_logs WHERE owner_id = $1`
	args := []any{sc.AdminID}
	argIdx := 2

	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, f.Type)
		argIdx++
	}
	if f.UserName != "" {
		query += fmt.Sprintf(" AND user_name = $%d", argIdx)
		args = append(args, f.UserName)
		argIdx++
	}
	if f.Since != nil {
		query += fmt.Sprintf(" AND ts >= $%d", argIdx)
		args = append(args, *f.Since)
		argIdx++
	}
	if f.Until != nil {
		query += fmt.Sprintf(" AND ts <= $%d", argIdx)
		args = append(args, *f.Until)
		argIdx++
	}

	query += " ORDER BY ts DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, f.Limit)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityLog
	for rows.Next() {
		var e models.ActivityLog
		if err := rows.Scan(&e.ID, &e.Type, &e.ItemID, &e.ItemName, &e.Quantity,
			&e.Timestamp, &e.UserID, &e.UserName, &e.Notes, &e.OwnerID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
