package report_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
)

func newReportUC(t *testing.T) *report.ReportUseCase {
	t.Helper()
	store := memory.NewStore(nil)
	warehouses := memory.NewWarehouseRepository(store)
	products := memory.NewProductRepository(store)

	wh := &entity.Warehouse{Name: "Bodega Central", Active: true}
	require.NoError(t, warehouses.Create(wh))

	require.NoError(t, products.Create(&entity.Product{
		SKU: "LAP-001", Name: "Portátil", Category: "Electrónica",
		Price: decimal.NewFromInt(2500000), Stock: 25, MinStock: 5, WarehouseID: wh.ID,
	}))
	require.NoError(t, products.Create(&entity.Product{
		SKU: "MON-002", Name: "Monitor", Category: "Electrónica",
		Price: decimal.NewFromInt(900000), Stock: 4, MinStock: 5, WarehouseID: wh.ID,
	}))
	// Producto con bodega colgante: el reporte deja la columna vacía.
	require.NoError(t, products.Create(&entity.Product{
		SKU: "TEC-003", Name: "Teclado", Stock: 1, MinStock: 10, WarehouseID: "borrada",
	}))

	return report.NewReportUseCase(products, warehouses, infrapdf.NewMarotoReportGenerator(), nil)
}

func TestInventoryCSV(t *testing.T) {
	uc := newReportUC(t)

	data, err := uc.InventoryCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "encabezado + tres productos")

	assert.Equal(t,
		[]string{"sku", "name", "category", "warehouse", "stock", "min_stock", "price", "low_stock"},
		records[0])

	rows := map[string][]string{}
	for _, r := range records[1:] {
		rows[r[0]] = r
	}

	lap := rows["LAP-001"]
	require.NotNil(t, lap)
	assert.Equal(t, "Bodega Central", lap[3])
	assert.Equal(t, "25", lap[4])
	assert.Equal(t, "false", lap[7])

	mon := rows["MON-002"]
	require.NotNil(t, mon)
	assert.Equal(t, "true", mon[7], "stock 4 con umbral 5 es bajo stock")

	tec := rows["TEC-003"]
	require.NotNil(t, tec)
	assert.Equal(t, "", tec[3], "bodega borrada sale vacía, no rompe el reporte")
}

func TestLowStockPDF(t *testing.T) {
	uc := newReportUC(t)

	data, err := uc.LowStockPDF(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "la salida debe ser un PDF")
}
