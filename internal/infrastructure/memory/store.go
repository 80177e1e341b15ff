// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Es el backing por defecto (datos de prueba);
// los adaptadores devuelven siempre copias para que ningún caller pueda mutar
// el estado interno del store.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Store contiene el estado compartido de todos los repositorios en memoria.
// Construir uno por proceso (o por test); nunca estado global de paquete.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	users      map[string]*entity.User
	logs       []*entity.InventoryLog

	now func() time.Time
}

// NewStore crea un store vacío. now es el reloj inyectable; nil usa time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		products:   map[string]*entity.Product{},
		warehouses: map[string]*entity.Warehouse{},
		users:      map[string]*entity.User{},
		now:        now,
	}
}

// Copias defensivas: las entidades no contienen punteros internos mutables,
// una copia superficial basta.

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	if w == nil {
		return nil
	}
	cp := *w
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func cloneLog(e *entity.InventoryLog) *entity.InventoryLog {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}
