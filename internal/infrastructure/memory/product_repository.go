package memory

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el store en memoria.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador sobre el store compartido.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create persiste un producto nuevo. Asigna ID y timestamps si faltan.
// Devuelve ErrDuplicate si el SKU ya existe (comparación exacta, case-sensitive).
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	now := r.s.now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = now
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

// GetByID obtiene una copia del producto, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneProduct(r.s.products[id]), nil
}

// GetForUpdate es equivalente a GetByID: la exclusión por producto la da el
// TxRunner, no el store.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// GetBySKU busca por SKU exacto (case-sensitive), o nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// ListByCategory busca por categoría sin distinguir mayúsculas (folding Unicode).
func (r *ProductRepo) ListByCategory(category string) ([]*entity.Product, error) {
	folder := cases.Fold()
	want := folder.String(category)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if folder.String(p.Category) == want {
			list = append(list, cloneProduct(p))
		}
	}
	sortProductsByCreatedAt(list)
	return list, nil
}

// List devuelve productos paginados, más reciente primero. limit<=0 devuelve todo.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		list = append(list, cloneProduct(p))
	}
	sortProductsByCreatedAt(list)
	return paginate(list, limit, offset), nil
}

// ListLowStock devuelve los productos con stock en o bajo su umbral mínimo.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.IsLowStock() {
			list = append(list, cloneProduct(p))
		}
	}
	sortProductsByCreatedAt(list)
	return list, nil
}

// Update reemplaza el producto almacenado. Devuelve ErrNotFound si no existe.
// La unicidad de SKU ante un cambio de SKU la valida el caso de uso antes de llamar.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

// Delete elimina el producto. Devuelve true si existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

func sortProductsByCreatedAt(list []*entity.Product) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

// paginate recorta una lista ya ordenada. limit<=0 significa sin límite.
func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
