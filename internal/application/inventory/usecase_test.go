package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// fixture arma un store en memoria con reloj fijo y un producto sembrado.
func fixture(t *testing.T) (*inventory.UpdateStockUseCase, *memory.Store, *entity.Product) {
	t.Helper()
	fixed := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(func() time.Time { return fixed })

	product := &entity.Product{
		SKU:         "LAP-001",
		Name:        "Portátil 14\"",
		Stock:       10,
		MinStock:    2,
		WarehouseID: "bodega-central",
	}
	require.NoError(t, memory.NewProductRepository(store).Create(product))

	uc := inventory.NewUpdateStockUseCase(memory.NewTxRunner(store), func() time.Time { return fixed })
	return uc, store, product
}

// Venta: stock 10 → 3 con motivo explícito. El historial registra la
// transición completa con delta negativo y acción "update".
func TestUpdateStock_VentaRegistraHistorial(t *testing.T) {
	uc, store, product := fixture(t)

	out, err := uc.UpdateStock(context.Background(), product.ID, 3, testUserID, "sale")
	require.NoError(t, err)

	assert.Equal(t, product.ID, out.ProductID)
	assert.Equal(t, 10, out.PreviousStock)
	assert.Equal(t, 3, out.UpdatedStock)

	got, err := memory.NewProductRepository(store).GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock, "el stock persistido debe ser el nuevo valor absoluto")

	logs, err := memory.NewInventoryLogRepository(store).ListByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1, "exactamente una entrada por mutación")

	entry := logs[0]
	assert.Equal(t, entity.ActionUpdate, entry.Action, "delta negativo se registra como update")
	assert.Equal(t, 10, entry.PreviousStock)
	assert.Equal(t, 3, entry.NewStock)
	assert.Equal(t, -7, entry.Quantity)
	assert.Equal(t, "sale", entry.Reason)
	assert.Equal(t, testUserID, entry.UserID)
	assert.Equal(t, "bodega-central", entry.WarehouseID,
		"la bodega se captura del producto al momento de la mutación")
}

// Reposición: delta positivo se registra como "add".
func TestUpdateStock_ReposicionRegistraAdd(t *testing.T) {
	uc, store, product := fixture(t)

	_, err := uc.UpdateStock(context.Background(), product.ID, 25, testUserID, "")
	require.NoError(t, err)

	logs, err := memory.NewInventoryLogRepository(store).ListByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionAdd, logs[0].Action)
	assert.Equal(t, 15, logs[0].Quantity)
	assert.Equal(t, inventory.DefaultReason, logs[0].Reason, "sin motivo se usa el default")
}

// Fijar el mismo valor sigue siendo una mutación: entrada con delta cero.
func TestUpdateStock_MismoValorRegistraDeltaCero(t *testing.T) {
	uc, store, product := fixture(t)

	out, err := uc.UpdateStock(context.Background(), product.ID, 10, testUserID, "audit")
	require.NoError(t, err)
	assert.Equal(t, 10, out.PreviousStock)
	assert.Equal(t, 10, out.UpdatedStock)

	logs, err := memory.NewInventoryLogRepository(store).ListByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionUpdate, logs[0].Action)
	assert.Equal(t, 0, logs[0].Quantity)
}

// Stock negativo se rechaza sin tocar el producto ni el historial.
func TestUpdateStock_NegativoRechazadoSinEfectos(t *testing.T) {
	uc, store, product := fixture(t)

	_, err := uc.UpdateStock(context.Background(), product.ID, -1, testUserID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := memory.NewProductRepository(store).GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock, "el stock no debe cambiar")

	logs, err := memory.NewInventoryLogRepository(store).ListByProduct(product.ID)
	require.NoError(t, err)
	assert.Empty(t, logs, "en error no se escribe historial")
}

func TestUpdateStock_ProductoInexistente(t *testing.T) {
	uc, store, _ := fixture(t)

	_, err := uc.UpdateStock(context.Background(), "no-existe", 5, testUserID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	logs, err := memory.NewInventoryLogRepository(store).ListAll(0, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestUpdateStock_SinUsuario(t *testing.T) {
	uc, _, product := fixture(t)
	_, err := uc.UpdateStock(context.Background(), product.ID, 5, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Mutaciones concurrentes sobre el mismo producto: cada entrada del historial
// debe encadenar con la anterior (previous_stock == new_stock previo), sin
// transiciones perdidas.
func TestUpdateStock_ConcurrenciaEncadenaHistorial(t *testing.T) {
	uc, store, product := fixture(t)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(v int) {
			defer wg.Done()
			_, err := uc.UpdateStock(context.Background(), product.ID, v, testUserID, "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	logs, err := memory.NewInventoryLogRepository(store).ListByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, logs, n)

	// ListByProduct devuelve más reciente primero; recorremos en orden de inserción.
	for i := len(logs) - 1; i > 0; i-- {
		older, newer := logs[i], logs[i-1]
		assert.Equal(t, older.NewStock, newer.PreviousStock,
			"cada mutación debe partir del stock que dejó la anterior")
	}

	got, err := memory.NewProductRepository(store).GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, logs[0].NewStock, got.Stock,
		"el stock final debe coincidir con la última entrada del historial")
}
