package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación append-only del historial de stock.
// Las entradas se guardan en orden de creación; las consultas "más reciente
// primero" recorren el slice al revés.
type InventoryLogRepo struct {
	s *Store
}

// NewInventoryLogRepository construye el adaptador sobre el store compartido.
func NewInventoryLogRepository(s *Store) *InventoryLogRepo {
	return &InventoryLogRepo{s: s}
}

// Create agrega una entrada al historial. Asigna ID y CreatedAt si faltan.
func (r *InventoryLogRepo) Create(entry *entity.InventoryLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.s.now()
	}
	r.s.logs = append(r.s.logs, cloneLog(entry))
	return nil
}

// ListAll devuelve el historial completo, más reciente primero. limit<=0 devuelve todo.
func (r *InventoryLogRepo) ListAll(limit, offset int) ([]*entity.InventoryLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.InventoryLog, 0, len(r.s.logs))
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		list = append(list, cloneLog(r.s.logs[i]))
	}
	return paginate(list, limit, offset), nil
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *InventoryLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InventoryLog
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		if r.s.logs[i].ProductID == productID {
			list = append(list, cloneLog(r.s.logs[i]))
		}
	}
	return list, nil
}

// ListByUser devuelve las mutaciones hechas por un usuario, más reciente primero.
func (r *InventoryLogRepo) ListByUser(userID string) ([]*entity.InventoryLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InventoryLog
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		if r.s.logs[i].UserID == userID {
			list = append(list, cloneLog(r.s.logs[i]))
		}
	}
	return list, nil
}

// ListSince devuelve las entradas con CreatedAt >= cutoff. El orden no está
// garantizado por contrato; aquí sale en orden de inserción.
func (r *InventoryLogRepo) ListSince(cutoff time.Time) ([]*entity.InventoryLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InventoryLog
	for _, e := range r.s.logs {
		if !e.CreatedAt.Before(cutoff) {
			list = append(list, cloneLog(e))
		}
	}
	return list, nil
}
