package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones de stock por producto usando un mutex por
// clave. Dos productos distintos se actualizan en paralelo; dos mutaciones del
// mismo producto nunca se entrelazan, así el par escritura+log queda atómico.
type TxRunner struct {
	store *Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTxRunner construye el runner sobre el store compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store, locks: map[string]*sync.Mutex{}}
}

// RunProduct ejecuta fn con exclusión sobre el producto indicado.
// Los locks por producto nunca se liberan del mapa; el universo de productos
// es pequeño y acotado por el inventario.
func (r *TxRunner) RunProduct(_ context.Context, productID string, fn func(
	products repository.ProductRepository,
	logs repository.InventoryLogRepository,
) error) error {
	lock := r.lockFor(productID)
	lock.Lock()
	defer lock.Unlock()
	return fn(NewProductRepository(r.store), NewInventoryLogRepository(r.store))
}

func (r *TxRunner) lockFor(productID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[productID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[productID] = lock
	}
	return lock
}
