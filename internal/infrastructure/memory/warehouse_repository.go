package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre el store en memoria.
type WarehouseRepo struct {
	s *Store
}

// NewWarehouseRepository construye el adaptador sobre el store compartido.
func NewWarehouseRepository(s *Store) *WarehouseRepo {
	return &WarehouseRepo{s: s}
}

// Create persiste una bodega nueva. Asigna ID y timestamps si faltan.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if warehouse.ID == "" {
		warehouse.ID = uuid.New().String()
	}
	if _, ok := r.s.warehouses[warehouse.ID]; ok {
		return domain.ErrDuplicate
	}
	now := r.s.now()
	if warehouse.CreatedAt.IsZero() {
		warehouse.CreatedAt = now
	}
	if warehouse.UpdatedAt.IsZero() {
		warehouse.UpdatedAt = now
	}
	r.s.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

// GetByID obtiene una copia de la bodega, o nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneWarehouse(r.s.warehouses[id]), nil
}

// List devuelve bodegas paginadas, más reciente primero.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		list = append(list, cloneWarehouse(w))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return paginate(list, limit, offset), nil
}

// Update reemplaza la bodega almacenada. Devuelve ErrNotFound si no existe.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.warehouses[warehouse.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

// Delete elimina la bodega. Devuelve true si existía. No cascada sobre
// productos: conservan su WarehouseID colgante.
func (r *WarehouseRepo) Delete(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.warehouses[id]; !ok {
		return false, nil
	}
	delete(r.s.warehouses, id)
	return true, nil
}
