package entity

import "time"

// Acciones registradas en el log de inventario. ActionRemove está declarada
// pero el mutador nunca la emite: deltas negativos y cero se registran como
// ActionUpdate (comportamiento heredado del sistema original).
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionRemove = "remove"
)

// InventoryLog es una entrada inmutable del historial de stock. Se crea solo
// como efecto de una mutación de stock; no existe update ni delete.
// Invariante: Quantity == NewStock - PreviousStock.
type InventoryLog struct {
	ID            string
	ProductID     string
	WarehouseID   string // bodega del producto al momento de la mutación; vacío si no tenía
	UserID        string
	Action        string // add, update, remove
	PreviousStock int
	NewStock      int
	Quantity      int
	Reason        string
	CreatedAt     time.Time
}
