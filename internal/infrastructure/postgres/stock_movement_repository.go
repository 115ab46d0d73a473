package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, batch_id, lot_number, type, quantity, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	sessionID := (*string)(nil)
	if movement.SessionID != "" {
		sessionID = &movement.SessionID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.BatchID, movement.LotNumber,
		movement.Type, movement.Quantity, sessionID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos que pasan el filtro con el nombre del
// producto resuelto, del más reciente al más antiguo.
func (r *StockMovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.product_id, m.batch_id, m.lot_number, m.type, m.quantity, m.session_id, m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id`
	args := []any{}
	pos := 1
	conds := []string{}
	if filter.Type != "" {
		conds = append(conds, fmt.Sprintf("m.type = $%d", pos))
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("m.created_at >= $%d", pos))
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("m.created_at <= $%d", pos))
		args = append(args, *filter.To)
		pos++
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY m.created_at DESC, m.id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var m repository.MovementRecord
		var sessionID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.BatchID, &m.LotNumber, &m.Type,
			&m.Quantity, &sessionID, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if sessionID != nil {
			m.SessionID = *sessionID
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
