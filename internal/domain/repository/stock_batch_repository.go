package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// StockBatchRepository define el puerto de persistencia para lotes.
// Los métodos ForUpdate bloquean filas (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción.
type StockBatchRepository interface {
	Create(batch *entity.StockBatch) error
	// GetByProductAndLotForUpdate devuelve el lote de (producto, lote) con la
	// fila bloqueada, o nil si no existe.
	GetByProductAndLotForUpdate(productID, lotNumber string) (*entity.StockBatch, error)
	// ListAvailableForUpdate devuelve los lotes con cantidad > 0 del producto,
	// ordenados por vencimiento ascendente con los sin-vencimiento al final
	// (empates por id), todos con fila bloqueada.
	ListAvailableForUpdate(productID string) ([]*entity.StockBatch, error)
	UpdateQuantity(batchID string, quantity decimal.Decimal) error
	ListByProduct(productID string) ([]*entity.StockBatch, error)
}
