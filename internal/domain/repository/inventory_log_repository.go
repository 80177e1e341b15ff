package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto de persistencia para el historial
// de stock. Es append-only: no existen Update ni Delete.
type InventoryLogRepository interface {
	Create(entry *entity.InventoryLog) error
	// ListAll devuelve el historial completo, más reciente primero.
	ListAll(limit, offset int) ([]*entity.InventoryLog, error)
	// ListByProduct devuelve el historial de un producto, más reciente primero.
	ListByProduct(productID string) ([]*entity.InventoryLog, error)
	ListByUser(userID string) ([]*entity.InventoryLog, error)
	// ListSince devuelve las entradas con CreatedAt >= cutoff, sin orden garantizado.
	ListSince(cutoff time.Time) ([]*entity.InventoryLog, error)
}
