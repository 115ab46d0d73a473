package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

const batchColumns = `id, product_id, lot_number, expire_date, quantity, created_at, updated_at`

// StockBatchRepo implementación de StockBatchRepository sobre PostgreSQL
// (usable con pool o tx).
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *StockBatchRepo) Create(batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (id, product_id, lot_number, expire_date, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.LotNumber, batch.ExpireDate,
		batch.Quantity, batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock batch: %w", err)
	}
	return nil
}

// GetByProductAndLotForUpdate obtiene el lote de (producto, lote) con la fila
// bloqueada (SELECT FOR UPDATE). nil si no existe.
func (r *StockBatchRepo) GetByProductAndLotForUpdate(productID, lotNumber string) (*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE product_id = $1 AND lot_number = $2
		FOR UPDATE`
	var b entity.StockBatch
	err := r.q.QueryRow(context.Background(), query, productID, lotNumber).Scan(
		&b.ID, &b.ProductID, &b.LotNumber, &b.ExpireDate, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch for update: %w", err)
	}
	return &b, nil
}

// ListAvailableForUpdate devuelve los lotes con existencia del producto en
// orden FEFO (vencimiento ascendente, sin-vencimiento al final, empates por
// id para que el orden sea estable), con todas las filas bloqueadas.
func (r *StockBatchRepo) ListAvailableForUpdate(productID string) ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches
		WHERE product_id = $1 AND quantity > 0
		ORDER BY expire_date ASC NULLS LAST, id ASC
		FOR UPDATE`
	return r.list(query, productID)
}

// ListByProduct lista todos los lotes del producto (incluye cantidad cero,
// que queda como historia), mismo orden FEFO, sin bloqueo.
func (r *StockBatchRepo) ListByProduct(productID string) ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches
		WHERE product_id = $1
		ORDER BY expire_date ASC NULLS LAST, id ASC`
	return r.list(query, productID)
}

func (r *StockBatchRepo) list(query, productID string) ([]*entity.StockBatch, error) {
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.LotNumber, &b.ExpireDate,
			&b.Quantity, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad del lote (ya rebajada o incrementada por el
// motor de stock, siempre >= 0).
func (r *StockBatchRepo) UpdateQuantity(batchID string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_batches SET quantity = $2, updated_at = now() WHERE id = $1`,
		batchID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	return nil
}
