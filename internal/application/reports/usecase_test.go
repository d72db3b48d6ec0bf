package reports_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/inventory"
	"github.com/donpepe/inventario-api/internal/application/reports"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(context.Context, *entity.Product) error      { return nil }
func (r *stubProductRepo) UpdateStock(context.Context, string, int) error     { return nil }
func (r *stubProductRepo) Delete(context.Context, string) error               { return nil }
func (r *stubProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.LowStock && p.CurrentStock > p.MinimumStock {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// stubMovementRepo registra el filtro recibido y devuelve movimientos fijos.
type stubMovementRepo struct {
	lastFilter repository.MovementFilter
	movements  []*entity.MovementDetail
}

func (r *stubMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (r *stubMovementRepo) GetByID(context.Context, int64) (*entity.MovementDetail, error) {
	return nil, nil
}
func (r *stubMovementRepo) SummaryForDay(context.Context, time.Time) ([]repository.KindSummary, error) {
	return nil, nil
}
func (r *stubMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	r.lastFilter = filter
	return r.movements, nil
}

// stubRenderer registra qué se le pidió renderizar y devuelve bytes fijos.
type stubRenderer struct {
	payload      []byte
	inventoryLen int
	lowStockLen  int
	movementsLen int
	period       string
}

func (s *stubRenderer) RenderInventory(products []*entity.Product) ([]byte, error) {
	s.inventoryLen = len(products)
	return s.payload, nil
}

func (s *stubRenderer) RenderLowStock(products []dto.LowStockProductDTO) ([]byte, error) {
	s.lowStockLen = len(products)
	return s.payload, nil
}

func (s *stubRenderer) RenderMovements(movements []dto.MovementResponse, period string) ([]byte, error) {
	s.movementsLen = len(movements)
	s.period = period
	return s.payload, nil
}

func newReportUseCase(products ...*entity.Product) (*reports.ReportUseCase, *stubRenderer, *stubRenderer) {
	uc, excel, pdf, _ := newReportUseCaseWithMovements(nil, products...)
	return uc, excel, pdf
}

func newReportUseCaseWithMovements(movements []*entity.MovementDetail, products ...*entity.Product) (*reports.ReportUseCase, *stubRenderer, *stubRenderer, *stubMovementRepo) {
	repo := &stubProductRepo{products: products}
	movRepo := &stubMovementRepo{movements: movements}
	excel := &stubRenderer{payload: []byte("xlsx")}
	pdf := &stubRenderer{payload: []byte("pdf")}
	uc := reports.NewReportUseCase(repo, movRepo, inventory.NewLowStockUseCase(repo), excel, pdf)
	return uc, excel, pdf, movRepo
}

func activeProduct(name string, stock, minimum int) *entity.Product {
	return &entity.Product{
		ID: "id-" + name, Name: name, Category: "panes",
		CurrentStock: stock, MinimumStock: minimum,
		Status: entity.ProductStatusActivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryExcel_GeneraDocumento(t *testing.T) {
	uc, excel, _ := newReportUseCase(
		activeProduct("Pan francés", 20, 5),
		activeProduct("Croissant", 8, 5),
	)

	report, err := uc.InventoryExcel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), report.Data)
	assert.Contains(t, report.Filename, "reporte-inventario-")
	assert.Contains(t, report.Filename, ".xlsx")
	assert.Equal(t, 2, excel.inventoryLen, "el renderer recibe todos los productos activos")
}

func TestInventoryPDF_SinProductos(t *testing.T) {
	uc, _, _ := newReportUseCase() // catálogo vacío

	_, err := uc.InventoryPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin productos no hay reporte de inventario")
}

// El reporte de stock bajo con lista vacía es válido: documento solo con cabeceras.
func TestLowStockPDF_ListaVaciaEsValida(t *testing.T) {
	uc, _, pdf := newReportUseCase(
		activeProduct("Pan sano", 50, 5),
	)

	report, err := uc.LowStockPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", report.ContentType)
	assert.Equal(t, 0, pdf.lowStockLen)
}

func ledgerEntry(id int64, product string) *entity.MovementDetail {
	return &entity.MovementDetail{
		Movement: entity.Movement{
			ID: id, ProductID: "p1", UserID: "u1",
			Kind: entity.MovementKindEntrada, Quantity: 10,
			StockBefore: 0, StockAfter: 10, CreatedAt: time.Now(),
		},
		ProductName: product,
		UserName:    "Pepe",
	}
}

func TestMovementsExcel_FiltraPorFechasInclusive(t *testing.T) {
	uc, excel, _, movRepo := newReportUseCaseWithMovements([]*entity.MovementDetail{
		ledgerEntry(2, "Croissant"),
		ledgerEntry(1, "Pan francés"),
	})

	report, err := uc.MovementsExcel(context.Background(), "2026-08-01", "2026-08-15")
	require.NoError(t, err)

	assert.Contains(t, report.Filename, "reporte-movimientos-")
	assert.Contains(t, report.Filename, ".xlsx")
	assert.Equal(t, 2, excel.movementsLen)
	assert.Equal(t, "2026-08-01 - 2026-08-15", excel.period)

	require.NotNil(t, movRepo.lastFilter.From)
	require.NotNil(t, movRepo.lastFilter.To)
	// fecha_fin cubre el día completo.
	assert.Equal(t, 15, movRepo.lastFilter.To.Day())
	assert.Equal(t, 23, movRepo.lastFilter.To.Hour())
	assert.Zero(t, movRepo.lastFilter.Limit, "el reporte no pagina")
}

func TestMovementsPDF_SinFiltrosNiMovimientos(t *testing.T) {
	uc, _, pdf, movRepo := newReportUseCaseWithMovements(nil)

	report, err := uc.MovementsPDF(context.Background(), "", "")
	require.NoError(t, err, "sin movimientos el documento sale solo con cabeceras")

	assert.Equal(t, "application/pdf", report.ContentType)
	assert.Equal(t, 0, pdf.movementsLen)
	assert.Empty(t, pdf.period, "sin filtro no hay etiqueta de período")
	assert.Nil(t, movRepo.lastFilter.From)
	assert.Nil(t, movRepo.lastFilter.To)
}

func TestMovementsExcel_FechaInvalida(t *testing.T) {
	uc, _, _, _ := newReportUseCaseWithMovements(nil)

	_, err := uc.MovementsExcel(context.Background(), "01/08/2026", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStockExcel_SoloProductosBajoElUmbral(t *testing.T) {
	uc, excel, _ := newReportUseCase(
		activeProduct("Agotado", 0, 5),
		activeProduct("Justo", 5, 5),
		activeProduct("Sano", 20, 5),
	)

	report, err := uc.LowStockExcel(context.Background())
	require.NoError(t, err)

	assert.Contains(t, report.Filename, "reporte-stock-bajo-")
	assert.Equal(t, 2, excel.lowStockLen)
}
