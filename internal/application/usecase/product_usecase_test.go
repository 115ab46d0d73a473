package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(*entity.Product) error { return nil }

func (r *fakeProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Search(string, int, int) ([]*entity.Product, int, error) {
	return r.products, len(r.products), nil
}

type fakeBatchRepo struct {
	batches []*entity.StockBatch
}

func (r *fakeBatchRepo) Create(b *entity.StockBatch) error { return nil }
func (r *fakeBatchRepo) GetByProductAndLotForUpdate(string, string) (*entity.StockBatch, error) {
	return nil, nil
}
func (r *fakeBatchRepo) ListAvailableForUpdate(string) ([]*entity.StockBatch, error) {
	return nil, nil
}
func (r *fakeBatchRepo) UpdateQuantity(string, decimal.Decimal) error { return nil }
func (r *fakeBatchRepo) ListByProduct(productID string) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.batches {
		if b.ProductID == productID {
			out = append(out, b)
		}
	}
	return out, nil
}

func fechaPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	tm, err := time.Parse(dto.DateLayout, s)
	require.NoError(t, err)
	return &tm
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Arroz", Barcode: "770"},
	}}
	uc := usecase.NewProductUseCase(repo, &fakeBatchRepo{}, 30)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Otro arroz", Barcode: "770"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_UnidadPorDefecto(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeBatchRepo{}, 30)

	resp, err := uc.Create(dto.CreateProductRequest{Name: "Arroz", Barcode: "770"})
	require.NoError(t, err)
	assert.Equal(t, "unidad", resp.Unit)
}

// El stock total y las banderas se derivan de los lotes, nunca se guardan.
func TestProductGetByID_DerivaStockYBanderas(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Yogur", Barcode: "770", MinStock: decimal.NewFromInt(50)},
	}}
	batches := &fakeBatchRepo{batches: []*entity.StockBatch{
		{ID: "b1", ProductID: "p1", LotNumber: "L1", Quantity: decimal.NewFromInt(10),
			ExpireDate: fechaPtr(t, time.Now().AddDate(0, 0, 5).Format(dto.DateLayout))},
		{ID: "b2", ProductID: "p1", LotNumber: "L2", Quantity: decimal.NewFromInt(8),
			ExpireDate: fechaPtr(t, "2020-01-01")},
	}}
	uc := usecase.NewProductUseCase(repo, batches, 30)

	resp, err := uc.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.TotalStock.Equal(decimal.NewFromInt(18)))
	assert.True(t, resp.LowStock, "18 < minStock 50")
	assert.True(t, resp.NearExpiry, "hay un lote que vence dentro de la ventana")
	assert.True(t, resp.Expired, "hay un lote ya vencido con stock")
	assert.Len(t, resp.Batches, 2, "el detalle incluye el desglose por lote")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeBatchRepo{}, 30)
	resp, err := uc.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductUpdate_MinStockNegativo(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Arroz", Barcode: "770"},
	}}
	uc := usecase.NewProductUseCase(repo, &fakeBatchRepo{}, 30)

	negativo := decimal.NewFromInt(-1)
	_, err := uc.Update("p1", dto.UpdateProductRequest{MinStock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests NormalizeSearchTerm
// ──────────────────────────────────────────────────────────────────────────────

// "Azúcar" y "azucar" deben normalizar a lo mismo. La ñ se descompone en
// n + virgulilla (marca Mn), así que también se aplana.
func TestNormalizeSearchTerm(t *testing.T) {
	casos := map[string]string{
		"Azúcar":     "azucar",
		"  CAFÉ  ":   "cafe",
		"panela":     "panela",
		"Ñame épico": "name epico",
	}
	for in, want := range casos {
		assert.Equal(t, want, usecase.NormalizeSearchTerm(in), "entrada: %q", in)
	}
}
