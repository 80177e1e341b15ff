package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *memory.Store, string) {
	t.Helper()
	store := memory.NewStore(nil)
	warehouse := &entity.Warehouse{Name: "Bodega Central", Active: true}
	require.NoError(t, memory.NewWarehouseRepository(store).Create(warehouse))
	uc := usecase.NewProductUseCase(
		memory.NewProductRepository(store),
		memory.NewWarehouseRepository(store),
		nil,
	)
	return uc, store, warehouse.ID
}

func TestProductUC_CreateValidaciones(t *testing.T) {
	uc, _, warehouseID := newProductUC(t)

	// Creación válida: low_stock se calcula en la respuesta.
	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "LAP-001", Name: "Portátil", Price: decimal.NewFromInt(100),
		Stock: 3, MinStock: 5, WarehouseID: warehouseID,
	})
	require.NoError(t, err)
	assert.True(t, out.LowStock, "stock 3 con umbral 5 es bajo stock")
	assert.NotEmpty(t, out.ID)

	// SKU duplicado → ErrDuplicate.
	_, err = uc.Create(dto.CreateProductRequest{SKU: "LAP-001", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Bodega inexistente → ErrNotFound.
	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "x", WarehouseID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Precio negativo → ErrInvalidInput.
	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-2", Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Stock negativo → ErrInvalidInput.
	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-3", Name: "x", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUC_UpdateCambioDeSKU(t *testing.T) {
	uc, _, _ := newProductUC(t)

	a, err := uc.Create(dto.CreateProductRequest{SKU: "A-1", Name: "a"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "B-1", Name: "b"})
	require.NoError(t, err)

	// Cambiar el SKU a uno ocupado → ErrDuplicate.
	taken := "B-1"
	_, err = uc.Update(a.ID, dto.UpdateProductRequest{SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reasignar el mismo SKU propio no es conflicto.
	same := "A-1"
	out, err := uc.Update(a.ID, dto.UpdateProductRequest{SKU: &same})
	require.NoError(t, err)
	assert.Equal(t, "A-1", out.SKU)

	// ID inexistente → nil, nil (el handler responde 404).
	free := "C-1"
	out, err = uc.Update("no-existe", dto.UpdateProductRequest{SKU: &free})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUC_ListPorCategoria(t *testing.T) {
	uc, _, _ := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{SKU: "A-1", Name: "a", Category: "Electrónica"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "A-2", Name: "b", Category: "Mobiliario"})
	require.NoError(t, err)

	out, err := uc.List("electrónica", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A-1", out.Items[0].SKU)

	all, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestProductUC_Delete(t *testing.T) {
	uc, _, _ := newProductUC(t)

	p, err := uc.Create(dto.CreateProductRequest{SKU: "A-1", Name: "a"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(p.ID))
	assert.ErrorIs(t, uc.Delete(p.ID), domain.ErrNotFound)
}
