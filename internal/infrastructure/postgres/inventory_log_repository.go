package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

const logColumns = `id, product_id, warehouse_id, user_id, action, previous_stock, new_stock, quantity, reason, created_at`

// InventoryLogRepo implementación append-only del historial sobre PostgreSQL.
// La tabla no tiene UPDATE ni DELETE en ninguna ruta de código.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create agrega una entrada al historial.
func (r *InventoryLogRepo) Create(entry *entity.InventoryLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (` + logColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, nullable(entry.WarehouseID), entry.UserID, entry.Action,
		entry.PreviousStock, entry.NewStock, entry.Quantity, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListAll devuelve el historial completo, más reciente primero. limit<=0 devuelve todo.
func (r *InventoryLogRepo) ListAll(limit, offset int) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	return r.list(query, args...)
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *InventoryLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs WHERE product_id = $1 ORDER BY created_at DESC`
	return r.list(query, productID)
}

// ListByUser devuelve las mutaciones hechas por un usuario, más reciente primero.
func (r *InventoryLogRepo) ListByUser(userID string) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// ListSince devuelve las entradas con created_at >= cutoff.
func (r *InventoryLogRepo) ListSince(cutoff time.Time) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs WHERE created_at >= $1`
	return r.list(query, cutoff)
}

func (r *InventoryLogRepo) list(query string, args ...any) ([]*entity.InventoryLog, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var e entity.InventoryLog
		var warehouseID *string
		if err := rows.Scan(&e.ID, &e.ProductID, &warehouseID, &e.UserID, &e.Action,
			&e.PreviousStock, &e.NewStock, &e.Quantity, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		if warehouseID != nil {
			e.WarehouseID = *warehouseID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
