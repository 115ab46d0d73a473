package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	Type string // "" = todos, o entity.MovementTypeIN / MovementTypeOUT
	From *time.Time
	To   *time.Time
}

// MovementRecord es un movimiento con el nombre del producto resuelto
// (join de solo lectura para el agregador de logs).
type MovementRecord struct {
	entity.StockMovement
	ProductName string
}

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve los movimientos que pasan el filtro, del más reciente al
	// más antiguo.
	List(ctx context.Context, filter MovementFilter) ([]MovementRecord, error)
}
