package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

const itemColumns = `id, name, category, current_stock, min_stock, unit, status, percent_remaining, last_updated, created_by, created_by_name, version`

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	query := `INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	item.ID = uuid.NewString()
	item.Version = 1
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.CurrentStock, item.MinStock, item.Unit,
		item.Status, item.PercentRemaining, item.LastUpdated, item.CreatedBy, item.CreatedByName)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("failed to insert item: %w", err)
	}
	return item, nil
}

func (r *PostgresItemRepository) GetAll(ctx context.Context, sc scope.Scope, f ItemFilter) ([]models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE created_by = $1`
	args := []any{sc.AdminID}
	argIdx := 2

	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if len(f.Statuses) > 0 {
		query += fmt.Sprintf(" AND status = ANY($%d)", argIdx)
		args = append(args, statusArray(f.Statuses))
	}
	query += " ORDER BY last_updated DESC"

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// statusArray renders a Postgres text array literal; the pgx stdlib driver
// accepts it for = ANY($n) without pulling in pq.Array.
func statusArray(statuses []string) string {
	out := "{"
	for i, s := range statuses {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out + "}"
}

func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresItemRepository) Update(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	query := `UPDATE inventory_items
		SET name = $1, category = $2, current_stock = $3, min_stock = $4, unit = $5,
			status = $6, percent_remaining = $7, last_updated = $8, version = version + 1
		WHERE id = $9`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Category, item.CurrentStock, item.MinStock, item.Unit,
		item.Status, item.PercentRemaining, item.LastUpdated, item.ID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

func (r *PostgresItemRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Adjust serializes concurrent adjustments on the item's row lock and commits
// the stock update together with its activity entry. Either both writes land
// or neither does.
func (r *PostgresItemRepository) Adjust(ctx context.Context, id string, mutate AdjustFunc) (models.InventoryItem, models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, fmt.Errorf("failed to begin adjustment: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, models.ActivityLog{}, ErrItemNotFound
	}
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, err
	}

	updated, entry, err := mutate(item)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE inventory_items
		SET current_stock = $1, status = $2, percent_remaining = $3, last_updated = $4, version = version + 1
		WHERE id = $5`,
		updated.CurrentStock, updated.Status, updated.PercentRemaining, updated.LastUpdated, updated.ID)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, fmt.Errorf("failed to update stock: %w", err)
	}
	updated.Version = item.Version + 1

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `INSERT INTO activity_logs
		(id, type, item_id, item_name, quantity, ts, user_id, user_name, notes, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.Type, entry.ItemID, entry.ItemName, entry.Quantity,
		entry.Timestamp, entry.UserID, entry.UserName, entry.Notes, entry.OwnerID)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, fmt.Errorf("failed to insert activity entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, fmt.Errorf("failed to commit adjustment: %w", err)
	}
	return updated, entry, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.CurrentStock, &item.MinStock,
		&item.Unit, &item.Status, &item.PercentRemaining, &item.LastUpdated,
		&item.CreatedBy, &item.CreatedByName, &item.Version)
	return item, err
}
