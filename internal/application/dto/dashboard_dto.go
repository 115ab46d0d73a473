package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Conteos agregados sobre productos y lotes del almacén.
type DashboardSummaryDTO struct {
	TotalProducts   int64           `json:"totalProducts"`
	TotalStock      decimal.Decimal `json:"totalStock"`      // suma de cantidades de todos los lotes
	LowStockCount   int64           `json:"lowStockCount"`   // productos bajo su MinStock
	NearExpiryCount int64           `json:"nearExpiryCount"` // lotes que vencen pronto
	ExpiredCount    int64           `json:"expiredCount"`    // lotes vencidos con existencia
}
