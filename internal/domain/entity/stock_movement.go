package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement es un registro inmutable del libro de movimientos: cada
// entrada o salida contra un lote concreto. Solo se inserta, nunca se
// actualiza ni se borra.
//
// Quantity siempre es positiva; la dirección la da Type.
// SessionID agrupa todos los movimientos producidos por una misma llamada
// masiva; vacío significa que el movimiento es su propio grupo.
type StockMovement struct {
	ID        string
	ProductID string
	BatchID   string
	LotNumber string // copia desnormalizada para mostrar
	Type      string // IN | OUT
	Quantity  decimal.Decimal
	SessionID string
	CreatedAt time.Time
}
