package inventory

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LogQueryUseCase consultas de solo lectura sobre el historial de stock.
type LogQueryUseCase struct {
	logs repository.InventoryLogRepository
	now  func() time.Time
}

// NewLogQueryUseCase construye el caso de uso. now nil usa time.Now.
func NewLogQueryUseCase(logs repository.InventoryLogRepository, now func() time.Time) *LogQueryUseCase {
	if now == nil {
		now = time.Now
	}
	return &LogQueryUseCase{logs: logs, now: now}
}

// ListAll devuelve el historial completo, más reciente primero.
func (uc *LogQueryUseCase) ListAll(limit, offset int) (*dto.InventoryLogListResponse, error) {
	list, err := uc.logs.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	return toLogListResponse(list), nil
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (uc *LogQueryUseCase) ListByProduct(productID string) (*dto.InventoryLogListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.logs.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toLogListResponse(list), nil
}

// ListByUser devuelve las mutaciones hechas por un usuario.
func (uc *LogQueryUseCase) ListByUser(userID string) (*dto.InventoryLogListResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toLogListResponse(list), nil
}

// ListWithinWindow devuelve las entradas con timestamp >= ahora - days días.
// El orden dentro de la ventana no está garantizado por contrato.
func (uc *LogQueryUseCase) ListWithinWindow(days int) (*dto.InventoryLogListResponse, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cutoff := uc.now().AddDate(0, 0, -days)
	list, err := uc.logs.ListSince(cutoff)
	if err != nil {
		return nil, err
	}
	return toLogListResponse(list), nil
}

func toLogListResponse(list []*entity.InventoryLog) *dto.InventoryLogListResponse {
	items := make([]dto.InventoryLogResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.InventoryLogResponse{
			ID:            e.ID,
			ProductID:     e.ProductID,
			WarehouseID:   e.WarehouseID,
			UserID:        e.UserID,
			Action:        e.Action,
			PreviousStock: e.PreviousStock,
			NewStock:      e.NewStock,
			Quantity:      e.Quantity,
			Reason:        e.Reason,
			CreatedAt:     e.CreatedAt,
		})
	}
	return &dto.InventoryLogListResponse{Items: items, Total: len(items)}
}
