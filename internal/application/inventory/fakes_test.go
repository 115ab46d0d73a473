package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: emulan el comportamiento de los repos de postgres,
// incluyendo el orden FEFO de ListAvailableForUpdate y el rollback del TxRunner.
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido entre los repos falsos.
type memStore struct {
	products  []*entity.Product
	batches   []*entity.StockBatch
	movements []*entity.StockMovement
}

func newMemStore(products ...*entity.Product) *memStore {
	return &memStore{products: products}
}

// snapshot copia profunda del estado, para emular rollback.
func (s *memStore) snapshot() *memStore {
	cp := &memStore{}
	for _, p := range s.products {
		c := *p
		cp.products = append(cp.products, &c)
	}
	for _, b := range s.batches {
		c := *b
		cp.batches = append(cp.batches, &c)
	}
	for _, m := range s.movements {
		c := *m
		cp.movements = append(cp.movements, &c)
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.batches = snap.batches
	s.movements = snap.movements
}

func (s *memStore) batchQuantity(batchID string) decimal.Decimal {
	for _, b := range s.batches {
		if b.ID == batchID {
			return b.Quantity
		}
	}
	return decimal.Zero
}

// ── Repos falsos ──────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }
func (r *fakeProductRepo) Search(string, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

type fakeBatchRepo struct{ s *memStore }

func (r *fakeBatchRepo) Create(b *entity.StockBatch) error {
	r.s.batches = append(r.s.batches, b)
	return nil
}

func (r *fakeBatchRepo) GetByProductAndLotForUpdate(productID, lotNumber string) (*entity.StockBatch, error) {
	for _, b := range r.s.batches {
		if b.ProductID == productID && b.LotNumber == lotNumber {
			return b, nil
		}
	}
	return nil, nil
}

// ListAvailableForUpdate replica el orden del repo real: vencimiento
// ascendente, los sin fecha al final, empates por id.
func (r *fakeBatchRepo) ListAvailableForUpdate(productID string) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.s.batches {
		if b.ProductID == productID && b.Quantity.GreaterThan(decimal.Zero) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ExpireDate, out[j].ExpireDate
		switch {
		case a == nil && b == nil:
			return out[i].ID < out[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return out[i].ID < out[j].ID
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

func (r *fakeBatchRepo) UpdateQuantity(batchID string, quantity decimal.Decimal) error {
	for _, b := range r.s.batches {
		if b.ID == batchID {
			b.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *fakeBatchRepo) ListByProduct(productID string) ([]*entity.StockBatch, error) {
	return r.ListAvailableForUpdate(productID)
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]repository.MovementRecord, error) {
	names := make(map[string]string, len(r.s.products))
	for _, p := range r.s.products {
		names[p.ID] = p.Name
	}
	var out []repository.MovementRecord
	for _, m := range r.s.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, repository.MovementRecord{StockMovement: *m, ProductName: names[m.ProductID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ── TxRunner falso ────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback sobre el store y, si devuelve error,
// restaura el snapshot previo (emula el rollback de la transacción real).
type fakeTxRunner struct{ s *memStore }

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	batchRepo repository.StockBatchRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := tx.s.snapshot()
	err := fn(&fakeBatchRepo{s: tx.s}, &fakeMovementRepo{s: tx.s}, &fakeProductRepo{s: tx.s})
	if err != nil {
		tx.s.restore(snap)
	}
	return err
}

// fakePDFGenerator devuelve bytes fijos; suficiente para el caso de uso.
type fakePDFGenerator struct{ entries []dto.StockLogEntryDTO }

func (g *fakePDFGenerator) GenerateLogPDF(_ context.Context, entries []dto.StockLogEntryDTO, _ time.Time) ([]byte, error) {
	g.entries = entries
	return []byte("%PDF-fake"), nil
}

var (
	_ inventory.TxRunner        = (*fakeTxRunner)(nil)
	_ inventory.LogPDFGenerator = (*fakePDFGenerator)(nil)
)
