package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch representa un lote de un producto: cantidad recibida junta,
// con número de lote y fecha de vencimiento propia.
//
// Quantity nunca baja de cero. Un lote con cantidad cero queda como historia:
// se excluye de la selección FEFO pero no se borra.
type StockBatch struct {
	ID         string
	ProductID  string
	LotNumber  string
	ExpireDate *time.Time // nil = no vence
	Quantity   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired indica si el lote ya venció respecto a now. Lotes sin fecha nunca vencen.
func (b *StockBatch) Expired(now time.Time) bool {
	return b.ExpireDate != nil && b.ExpireDate.Before(now)
}
