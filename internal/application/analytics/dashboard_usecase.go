// Package analytics contiene los casos de uso de solo lectura para el
// resumen del dashboard del almacén.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// DashboardUseCase genera los conteos agregados del almacén.
//
// Fuente de datos: DashboardRepository (consultas read-only); no toca el
// motor transaccional de stock.
type DashboardUseCase struct {
	dashboardRepo  repository.DashboardRepository
	nearExpiryDays int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, nearExpiryDays int) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, nearExpiryDays: nearExpiryDays}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas independientes lanzadas en paralelo:
//  1. CountProducts
//  2. TotalStock
//  3. CountLowStock
//  4. CountNearExpiry (ventana nearExpiryDays)
//  5. CountExpired
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	type countResult struct {
		n   int64
		err error
	}
	type stockResult struct {
		total decimal.Decimal
		err   error
	}

	productsCh := make(chan countResult, 1)
	stockCh := make(chan stockResult, 1)
	lowCh := make(chan countResult, 1)
	nearCh := make(chan countResult, 1)
	expiredCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.TotalStock(ctx)
		stockCh <- stockResult{total, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLowStock(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountNearExpiry(ctx, now, uc.nearExpiryDays)
		nearCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountExpired(ctx, now)
		expiredCh <- countResult{n, err}
	}()

	products := <-productsCh
	stock := <-stockCh
	low := <-lowCh
	near := <-nearCh
	expired := <-expiredCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock total: %w", stock.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if near.err != nil {
		return nil, fmt.Errorf("dashboard: por vencer: %w", near.err)
	}
	if expired.err != nil {
		return nil, fmt.Errorf("dashboard: vencidos: %w", expired.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:   products.n,
		TotalStock:      stock.total,
		LowStockCount:   low.n,
		NearExpiryCount: near.n,
		ExpiredCount:    expired.n,
	}, nil
}
