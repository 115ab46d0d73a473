package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas agregadas de solo lectura sobre
// productos y lotes para el resumen del dashboard.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	// TotalStock suma las cantidades de todos los lotes.
	TotalStock(ctx context.Context) (decimal.Decimal, error)
	// CountLowStock cuenta productos cuyo stock total está por debajo de su MinStock.
	CountLowStock(ctx context.Context) (int64, error)
	// CountNearExpiry cuenta lotes con cantidad > 0 que vencen entre now y now+days.
	CountNearExpiry(ctx context.Context, now time.Time, days int) (int64, error)
	// CountExpired cuenta lotes con cantidad > 0 ya vencidos respecto a now.
	CountExpired(ctx context.Context, now time.Time) (int64, error)
}
