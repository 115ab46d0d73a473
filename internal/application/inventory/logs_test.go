package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

func movimiento(id, productID, lot, typ, session string, qty int64, at time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        id,
		ProductID: productID,
		BatchID:   "b-" + lot,
		LotNumber: lot,
		Type:      typ,
		Quantity:  decimal.NewFromInt(qty),
		SessionID: session,
		CreatedAt: at,
	}
}

// Movimientos de una misma sesión, producto y dirección se funden en una sola
// entrada: cantidad sumada, timestamp más antiguo y desglose por lote.
func TestGetLogs_AgrupaPorSesion(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeOUT, "sess-1", 20, base),
		movimiento("m2", "prod-arroz", "LOT002", entity.MovementTypeOUT, "sess-1", 20, base.Add(time.Second)),
		movimiento("m3", "prod-arroz", "LOT001", entity.MovementTypeOUT, "sess-1", 5, base.Add(2*time.Second)),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "sess-1", e.SessionID)
	assert.Equal(t, entity.MovementTypeOUT, e.Type)
	assert.Equal(t, "Arroz blanco 500g", e.ProductName)
	assert.True(t, e.TotalQuantity.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, base, e.CreatedAt, "el grupo lleva el timestamp más antiguo")

	require.Len(t, e.Lots, 2)
	assert.Equal(t, "LOT001", e.Lots[0].Lot)
	assert.True(t, e.Lots[0].Quantity.Equal(decimal.NewFromInt(25)),
		"el mismo lote dentro de la sesión acumula cantidades")
	assert.Equal(t, "LOT002", e.Lots[1].Lot)
}

// La misma sesión con direcciones distintas (IN y OUT) produce grupos separados.
func TestGetLogs_DireccionSeparaGrupos(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "sess-1", 10, base),
		movimiento("m2", "prod-arroz", "LOT001", entity.MovementTypeOUT, "sess-1", 4, base.Add(time.Minute)),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// Movimientos sin sesión nunca se funden entre sí: cada uno es su propio grupo.
func TestGetLogs_SinSesionNoSeFunden(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "", 10, base),
		movimiento("m2", "prod-arroz", "LOT001", entity.MovementTypeIN, "", 10, base),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].SessionID)
}

// Los grupos salen del más reciente al más antiguo.
func TestGetLogs_OrdenMasRecientePrimero(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "vieja", 10, base),
		movimiento("m2", "prod-arroz", "LOT002", entity.MovementTypeIN, "nueva", 10, base.Add(time.Hour)),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "nueva", entries[0].SessionID)
	assert.Equal(t, "vieja", entries[1].SessionID)
}

// El filtro por tipo llega intacto al repositorio.
func TestGetLogs_FiltraPorTipo(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "s1", 10, base),
		movimiento("m2", "prod-arroz", "LOT001", entity.MovementTypeOUT, "s2", 4, base),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{Type: entity.MovementTypeOUT})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.MovementTypeOUT, entries[0].Type)
}

// ExportPDF delega en el generador con las mismas entradas que GetLogs.
func TestExportPDF_UsaLasEntradasDelLog(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "s1", 10, base),
	}
	gen := &fakePDFGenerator{}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, gen)

	pdf, err := uc.ExportPDF(context.Background(), inventory.LogQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.Len(t, gen.entries, 1)
	assert.Equal(t, "s1", gen.entries[0].SessionID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveRange (vía GetLogs con atajo de rango)
// ──────────────────────────────────────────────────────────────────────────────

// El atajo con nombre tiene precedencia sobre From/To explícitos: con
// filter=today un movimiento de ayer queda fuera aunque From lo cubra.
func TestGetLogs_AtajoPrecedeAFechasExplicitas(t *testing.T) {
	now := time.Now()
	ayer := now.AddDate(0, 0, -1)
	hace10 := now.AddDate(0, 0, -10)

	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "hoy", 10, now.Add(-time.Minute)),
		movimiento("m2", "prod-arroz", "LOT001", entity.MovementTypeIN, "ayer", 10, ayer),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{
		Named: inventory.RangeToday,
		From:  &hace10,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hoy", entries[0].SessionID)
}

// filter=7days incluye lo de hace 5 días y excluye lo de hace 20.
func TestGetLogs_Rango7Dias(t *testing.T) {
	now := time.Now()
	store := newMemStore(productoArroz())
	store.movements = []*entity.StockMovement{
		movimiento("m1", "prod-arroz", "LOT001", entity.MovementTypeIN, "reciente", 10, now.AddDate(0, 0, -5)),
		movimiento("m2", "prod-arroz", "LOT001", entity.MovementTypeIN, "antigua", 10, now.AddDate(0, 0, -20)),
	}
	uc := inventory.NewMovementLogUseCase(&fakeMovementRepo{s: store}, &fakePDFGenerator{})

	entries, err := uc.GetLogs(context.Background(), inventory.LogQuery{Named: inventory.Range7Days})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reciente", entries[0].SessionID)
}
