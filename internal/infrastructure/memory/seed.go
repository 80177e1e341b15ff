package memory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Credenciales demo sembradas con el backing en memoria. Solo para
// development; en producción usar STORE_DRIVER=postgres sin seed.
const (
	SeedAdminEmail   = "admin@almacen.local"
	SeedManagerEmail = "manager@almacen.local"
	SeedViewerEmail  = "viewer@almacen.local"
	SeedPassword     = "cambiar123"
)

// Seed carga datos de prueba: tres usuarios (uno por rol), dos bodegas y un
// inventario pequeño. Idempotente solo sobre un store vacío.
func Seed(store *Store) error {
	users := NewUserRepository(store)
	warehouses := NewWarehouseRepository(store)
	products := NewProductRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range []struct {
		email string
		name  string
		role  entity.Role
	}{
		{SeedAdminEmail, "Administrador", entity.RoleAdmin},
		{SeedManagerEmail, "Jefe de bodega", entity.RoleManager},
		{SeedViewerEmail, "Consulta", entity.RoleViewer},
	} {
		if err := users.Create(&entity.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			Status:       entity.UserStatusActive,
		}); err != nil {
			return err
		}
	}

	central := &entity.Warehouse{Name: "Bodega Central", Location: "Bogotá", Capacity: 5000, Active: true}
	norte := &entity.Warehouse{Name: "Bodega Norte", Location: "Medellín", Capacity: 1200, Active: true}
	if err := warehouses.Create(central); err != nil {
		return err
	}
	if err := warehouses.Create(norte); err != nil {
		return err
	}

	for _, p := range []*entity.Product{
		{SKU: "LAP-001", Name: "Portátil 14\"", Category: "Electrónica", Price: decimal.NewFromInt(2500000), Stock: 25, MinStock: 5, WarehouseID: central.ID},
		{SKU: "MON-002", Name: "Monitor 27\"", Category: "Electrónica", Price: decimal.NewFromInt(900000), Stock: 4, MinStock: 5, WarehouseID: central.ID},
		{SKU: "TEC-003", Name: "Teclado mecánico", Category: "Accesorios", Price: decimal.NewFromInt(180000), Stock: 60, MinStock: 10, WarehouseID: norte.ID},
		{SKU: "SIL-004", Name: "Silla ergonómica", Category: "Mobiliario", Price: decimal.NewFromInt(750000), Stock: 12, MinStock: 3, WarehouseID: norte.ID},
	} {
		if err := products.Create(p); err != nil {
			return err
		}
	}
	return nil
}
