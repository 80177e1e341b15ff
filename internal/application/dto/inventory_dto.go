package dto

import "time"

// UpdateStockRequest body para PATCH /api/products/:id/stock.
// Stock es puntero para distinguir "ausente" de 0; un body no numérico falla
// en el parseo y se responde como validación.
type UpdateStockRequest struct {
	Stock  *int   `json:"stock"`
	Reason string `json:"reason"`
}

// StockUpdateResponse resultado de una mutación de stock.
type StockUpdateResponse struct {
	ProductID     string    `json:"product_id"`
	PreviousStock int       `json:"previous_stock"`
	UpdatedStock  int       `json:"updated_stock"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InventoryLogResponse salida de una entrada del historial.
type InventoryLogResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	WarehouseID   string    `json:"warehouse_id,omitempty"`
	UserID        string    `json:"user_id"`
	Action        string    `json:"action"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// InventoryLogListResponse lista de entradas del historial.
type InventoryLogListResponse struct {
	Items []InventoryLogResponse `json:"items"`
	Total int                    `json:"total"`
}
