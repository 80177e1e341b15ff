package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func TestProductRepo_CreateSKUDuplicado(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.Create(&entity.Product{SKU: "LAP-001", Name: "Portátil"}))
	err := repo.Create(&entity.Product{SKU: "LAP-001", Name: "Otro portátil"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// SKU distinto solo en mayúsculas sí es otro SKU (comparación exacta).
	assert.NoError(t, repo.Create(&entity.Product{SKU: "lap-001", Name: "Minúsculas"}))
}

// El store devuelve copias: mutar lo leído no debe afectar lo almacenado.
func TestProductRepo_CopiaDefensiva(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewProductRepository(store)

	p := &entity.Product{SKU: "MON-002", Name: "Monitor", Stock: 4}
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	got.Stock = 999
	got.Name = "mutado"

	again, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Stock)
	assert.Equal(t, "Monitor", again.Name)
}

// La búsqueda por categoría usa folding Unicode: "electrónica" y "ELECTRÓNICA"
// son la misma categoría.
func TestProductRepo_ListByCategoryInsensible(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.Create(&entity.Product{SKU: "A-1", Name: "a", Category: "Electrónica"}))
	require.NoError(t, repo.Create(&entity.Product{SKU: "A-2", Name: "b", Category: "ELECTRÓNICA"}))
	require.NoError(t, repo.Create(&entity.Product{SKU: "A-3", Name: "c", Category: "Mobiliario"}))

	list, err := repo.ListByCategory("electrónica")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProductRepo_ListLowStock(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.Create(&entity.Product{SKU: "A-1", Name: "ok", Stock: 10, MinStock: 5}))
	require.NoError(t, repo.Create(&entity.Product{SKU: "A-2", Name: "justo", Stock: 5, MinStock: 5}))
	require.NoError(t, repo.Create(&entity.Product{SKU: "A-3", Name: "bajo", Stock: 1, MinStock: 5}))

	list, err := repo.ListLowStock()
	require.NoError(t, err)
	require.Len(t, list, 2, "stock == min_stock también cuenta como bajo")
}

func TestProductRepo_DeleteSemantica(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewProductRepository(store)

	p := &entity.Product{SKU: "A-1", Name: "a"}
	require.NoError(t, repo.Create(p))

	deleted, err := repo.Delete(p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(p.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "segundo delete del mismo ID devuelve false sin error")

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_EmailDuplicadoInsensible(t *testing.T) {
	store := memory.NewStore(nil)
	repo := memory.NewUserRepository(store)

	require.NoError(t, repo.Create(&entity.User{
		Email: "Admin@almacen.local", PasswordHash: "x", Name: "a",
		Role: entity.RoleAdmin, Status: entity.UserStatusActive,
	}))
	err := repo.Create(&entity.User{
		Email: "admin@ALMACEN.local", PasswordHash: "x", Name: "b",
		Role: entity.RoleViewer, Status: entity.UserStatusActive,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail("ADMIN@almacen.LOCAL")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Name)
}

func TestInventoryLogRepo_OrdenYVentana(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	current := base
	store := memory.NewStore(func() time.Time { return current })
	repo := memory.NewInventoryLogRepository(store)

	// Tres entradas con un día de separación.
	for i := 0; i < 3; i++ {
		current = base.AddDate(0, 0, i)
		require.NoError(t, repo.Create(&entity.InventoryLog{
			ProductID: "p1", UserID: "u1", Action: entity.ActionUpdate,
			PreviousStock: i, NewStock: i + 1, Quantity: 1,
			CreatedAt: current,
		}))
	}

	all, err := repo.ListAll(0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[2].CreatedAt), "más reciente primero")

	// Corte inclusivo: las entradas con timestamp == cutoff entran en la ventana.
	since, err := repo.ListSince(base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, since, 2)

	byUser, err := repo.ListByUser("u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	byOther, err := repo.ListByUser("u2")
	require.NoError(t, err)
	assert.Empty(t, byOther)
}

func TestSeed_CargaDatosDemo(t *testing.T) {
	store := memory.NewStore(nil)
	require.NoError(t, memory.Seed(store))

	admin, err := memory.NewUserRepository(store).GetByEmail(memory.SeedAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	products, err := memory.NewProductRepository(store).List(0, 0)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	low, err := memory.NewProductRepository(store).ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1, "el seed incluye exactamente un producto bajo umbral")
	assert.Equal(t, "MON-002", low[0].SKU)
}
