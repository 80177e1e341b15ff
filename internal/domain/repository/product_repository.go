package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los adaptadores devuelven copias: mutar el resultado no afecta el store.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate lee el producto con exclusión para una mutación de stock.
	// Solo es válido dentro de TxRunner.RunProduct para ese producto.
	GetForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListByCategory(category string) ([]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) (bool, error)
}
