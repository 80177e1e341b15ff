package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn con exclusión sobre un producto, pasando repositorios
// atados a esa unidad atómica. Garantiza que el par escritura-de-stock +
// entrada-de-log se aplica completo o no se aplica: el backing en memoria usa
// un mutex por producto; el backing PostgreSQL una transacción con
// SELECT FOR UPDATE. Productos distintos pueden correr en paralelo.
type TxRunner interface {
	RunProduct(ctx context.Context, productID string, fn func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error) error
}
