package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts cuenta todos los productos.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// TotalStock suma las cantidades de todos los lotes (COALESCE para almacén vacío).
func (r *DashboardRepo) TotalStock(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM stock_batches`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.TotalStock: %w", err)
	}
	return total, nil
}

// CountLowStock cuenta productos cuyo stock total (suma de lotes) está por
// debajo de su umbral min_stock.
func (r *DashboardRepo) CountLowStock(ctx context.Context) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM products p
	LEFT JOIN (
	    SELECT product_id, SUM(quantity) AS total
	    FROM stock_batches
	    GROUP BY product_id
	) s ON s.product_id = p.id
	WHERE COALESCE(s.total, 0) < p.min_stock`
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return n, nil
}

// CountNearExpiry cuenta lotes con existencia que vencen entre now y now+days.
func (r *DashboardRepo) CountNearExpiry(ctx context.Context, now time.Time, days int) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM stock_batches
	WHERE quantity > 0
	  AND expire_date IS NOT NULL
	  AND expire_date >= $1
	  AND expire_date < $2`
	var n int64
	limit := now.AddDate(0, 0, days)
	if err := r.pool.QueryRow(ctx, query, now, limit).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountNearExpiry: %w", err)
	}
	return n, nil
}

// CountExpired cuenta lotes vencidos que aún tienen existencia.
func (r *DashboardRepo) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM stock_batches
	WHERE quantity > 0
	  AND expire_date IS NOT NULL
	  AND expire_date < $1`
	var n int64
	if err := r.pool.QueryRow(ctx, query, now).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountExpired: %w", err)
	}
	return n, nil
}
