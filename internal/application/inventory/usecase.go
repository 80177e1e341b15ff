package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DefaultReason se usa cuando la mutación llega sin motivo.
const DefaultReason = "Stock update"

// UpdateStockUseCase aplica una mutación de stock y registra exactamente una
// entrada en el historial, de forma atómica y serializada por producto.
type UpdateStockUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewUpdateStockUseCase construye el caso de uso. now nil usa time.Now.
func NewUpdateStockUseCase(txRunner TxRunner, now func() time.Time) *UpdateStockUseCase {
	if now == nil {
		now = time.Now
	}
	return &UpdateStockUseCase{txRunner: txRunner, now: now}
}

// UpdateStock fija el stock del producto en newStock y agrega la entrada de
// historial que refleja la transición (previo, nuevo, delta, usuario, bodega
// del producto en ese momento).
//
// La acción registrada es "add" solo con delta positivo; cero y negativo se
// registran como "update". "remove" nunca se emite (comportamiento heredado).
//
// Errores: ErrInvalidInput si newStock < 0 o faltan IDs; ErrNotFound si el
// producto no existe. En error no queda ni stock nuevo ni entrada de log.
func (uc *UpdateStockUseCase) UpdateStock(ctx context.Context, productID string, newStock int, actingUserID, reason string) (*dto.StockUpdateResponse, error) {
	if productID == "" || actingUserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if newStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = DefaultReason
	}

	var result *dto.StockUpdateResponse
	err := uc.txRunner.RunProduct(ctx, productID, func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error {
		product, err := products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.Stock
		now := uc.now()

		product.Stock = newStock
		product.UpdatedAt = now
		if err := products.Update(product); err != nil {
			return err
		}

		delta := newStock - previous
		action := entity.ActionUpdate
		if delta > 0 {
			action = entity.ActionAdd
		}
		entry := &entity.InventoryLog{
			ProductID:     productID,
			WarehouseID:   product.WarehouseID,
			UserID:        actingUserID,
			Action:        action,
			PreviousStock: previous,
			NewStock:      newStock,
			Quantity:      delta,
			Reason:        reason,
			CreatedAt:     now,
		}
		if err := logs.Create(entry); err != nil {
			return err
		}

		result = &dto.StockUpdateResponse{
			ProductID:     productID,
			PreviousStock: previous,
			UpdatedStock:  newStock,
			UpdatedAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
