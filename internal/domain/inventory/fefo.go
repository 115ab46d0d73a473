// Package inventory contiene los servicios de dominio del motor de stock.
// La pieza central es el asignador FEFO (First-Expired-First-Out): consume
// primero los lotes más próximos a vencer.
package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain"
)

// AvailableBatch es la vista de un lote elegible para asignación
// (cantidad > 0), desacoplada de la entidad persistida.
type AvailableBatch struct {
	BatchID    string
	LotNumber  string
	ExpireDate *time.Time // nil = no vence; ordena al final
	Quantity   decimal.Decimal
}

// Deduction es la rebaja aplicada a un lote concreto.
type Deduction struct {
	BatchID   string
	LotNumber string
	Quantity  decimal.Decimal
}

// Allocation es el resultado de una asignación satisfecha por completo:
// la cantidad pedida repartida en orden FEFO entre uno o más lotes.
type Allocation struct {
	Requested  decimal.Decimal
	Deductions []Deduction
}

// InsufficientStockError indica que la suma de los lotes disponibles no
// alcanza la cantidad pedida. El caso de uso decide si aborta la transacción
// completa (política actual para salidas masivas).
type InsufficientStockError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: solicitado %s, disponible %s",
		e.Requested.String(), e.Available.String())
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return domain.ErrInsufficientStock }

// SortFEFO ordena los lotes para consumo: vencimiento ascendente, los lotes
// sin fecha de vencimiento al final, empates por BatchID ascendente para que
// el orden sea estable entre llamadas repetidas.
func SortFEFO(batches []AvailableBatch) {
	sort.SliceStable(batches, func(i, j int) bool {
		a, b := batches[i].ExpireDate, batches[j].ExpireDate
		switch {
		case a == nil && b == nil:
			return batches[i].BatchID < batches[j].BatchID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return batches[i].BatchID < batches[j].BatchID
		default:
			return a.Before(*b)
		}
	})
}

// Allocate reparte la cantidad pedida entre los lotes en orden FEFO.
// Recorre los lotes rebajando min(restante, lote.Quantity) de cada uno hasta
// satisfacer el pedido; un lote nunca queda en negativo porque el recorrido
// se detiene cuando el restante llega a cero.
//
// Si la suma disponible no alcanza devuelve *InsufficientStockError y ninguna
// rebaja. Lotes con cantidad <= 0 se ignoran.
func Allocate(batches []AvailableBatch, requested decimal.Decimal) (*Allocation, error) {
	if !requested.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	ordered := make([]AvailableBatch, 0, len(batches))
	available := decimal.Zero
	for _, b := range batches {
		if b.Quantity.GreaterThan(decimal.Zero) {
			ordered = append(ordered, b)
			available = available.Add(b.Quantity)
		}
	}
	if available.LessThan(requested) {
		return nil, &InsufficientStockError{Requested: requested, Available: available}
	}
	SortFEFO(ordered)

	alloc := &Allocation{Requested: requested}
	remaining := requested
	for _, b := range ordered {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		take := decimal.Min(remaining, b.Quantity)
		alloc.Deductions = append(alloc.Deductions, Deduction{
			BatchID:   b.BatchID,
			LotNumber: b.LotNumber,
			Quantity:  take,
		})
		remaining = remaining.Sub(take)
	}
	return alloc, nil
}
