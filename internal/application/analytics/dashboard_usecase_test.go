package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/analytics"
)

// fakeDashboardRepo conteos fijos, con error inyectable por consulta.
type fakeDashboardRepo struct {
	products, low, near, expired int64
	stock                        decimal.Decimal
	nearDays                     int
	failNear                     error
}

func (r *fakeDashboardRepo) CountProducts(context.Context) (int64, error) { return r.products, nil }
func (r *fakeDashboardRepo) TotalStock(context.Context) (decimal.Decimal, error) {
	return r.stock, nil
}
func (r *fakeDashboardRepo) CountLowStock(context.Context) (int64, error) { return r.low, nil }
func (r *fakeDashboardRepo) CountNearExpiry(_ context.Context, _ time.Time, days int) (int64, error) {
	r.nearDays = days
	return r.near, r.failNear
}
func (r *fakeDashboardRepo) CountExpired(context.Context, time.Time) (int64, error) {
	return r.expired, nil
}

func TestDashboardGetSummary(t *testing.T) {
	repo := &fakeDashboardRepo{
		products: 12,
		stock:    decimal.NewFromInt(340),
		low:      3,
		near:     2,
		expired:  1,
	}
	uc := analytics.NewDashboardUseCase(repo, 30)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), summary.TotalProducts)
	assert.True(t, summary.TotalStock.Equal(decimal.NewFromInt(340)))
	assert.Equal(t, int64(3), summary.LowStockCount)
	assert.Equal(t, int64(2), summary.NearExpiryCount)
	assert.Equal(t, int64(1), summary.ExpiredCount)
	assert.Equal(t, 30, repo.nearDays, "la ventana configurada llega al repositorio")
}

func TestDashboardGetSummary_ErrorDeUnaConsulta(t *testing.T) {
	repo := &fakeDashboardRepo{failNear: errors.New("timeout")}
	uc := analytics.NewDashboardUseCase(repo, 30)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "por vencer")
}
