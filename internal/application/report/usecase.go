package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LowStockRow fila del reporte de bajo stock, lista para renderizar.
type LowStockRow struct {
	SKU       string
	Name      string
	Category  string
	Warehouse string
	Stock     int
	MinStock  int
}

// PDFGenerator renderiza el reporte de bajo stock (puerto; lo implementa
// infrastructure/pdf con Maroto).
type PDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, rows []LowStockRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera los reportes de inventario (CSV completo y PDF de bajo stock).
type ReportUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	pdf        PDFGenerator
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. now nil usa time.Now.
func NewReportUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	pdf PDFGenerator,
	now func() time.Time,
) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{products: products, warehouses: warehouses, pdf: pdf, now: now}
}

// InventoryCSV genera el inventario completo como CSV.
// Columnas: sku, name, category, warehouse, stock, min_stock, price, low_stock.
func (uc *ReportUseCase) InventoryCSV(_ context.Context) ([]byte, error) {
	list, err := uc.products.List(0, 0)
	if err != nil {
		return nil, err
	}
	names, err := uc.warehouseNames()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"sku", "name", "category", "warehouse", "stock", "min_stock", "price", "low_stock"}); err != nil {
		return nil, err
	}
	for _, p := range list {
		record := []string{
			p.SKU,
			p.Name,
			p.Category,
			names[p.WarehouseID], // vacío si la bodega fue borrada o no hay
			fmt.Sprintf("%d", p.Stock),
			fmt.Sprintf("%d", p.MinStock),
			p.Price.String(),
			fmt.Sprintf("%t", p.IsLowStock()),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LowStockPDF genera el reporte PDF de productos en o bajo su umbral mínimo.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.products.ListLowStock()
	if err != nil {
		return nil, err
	}
	names, err := uc.warehouseNames()
	if err != nil {
		return nil, err
	}
	rows := make([]LowStockRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, toLowStockRow(p, names))
	}
	return uc.pdf.GenerateLowStockPDF(ctx, rows, uc.now())
}

func (uc *ReportUseCase) warehouseNames() (map[string]string, error) {
	list, err := uc.warehouses.List(0, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for _, w := range list {
		names[w.ID] = w.Name
	}
	return names, nil
}

func toLowStockRow(p *entity.Product, warehouseNames map[string]string) LowStockRow {
	return LowStockRow{
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Warehouse: warehouseNames[p.WarehouseID],
		Stock:     p.Stock,
		MinStock:  p.MinStock,
	}
}
