package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// Atajos de rango aceptados en el parámetro `filter`.
const (
	RangeToday  = "today"
	Range7Days  = "7days"
	Range30Days = "30days"
)

// LogQuery filtros de GET /api/stock/logs. Named (atajo) tiene precedencia
// sobre From/To cuando ambos llegan.
type LogQuery struct {
	Type  string // "" | IN | OUT
	From  *time.Time
	To    *time.Time
	Named string // "" | today | 7days | 30days
}

// MovementLogUseCase lee el libro de movimientos y lo agrega en entradas de
// log por sesión para mostrar. Solo lectura.
type MovementLogUseCase struct {
	movementRepo repository.StockMovementRepository
	pdfGenerator LogPDFGenerator
}

// NewMovementLogUseCase construye el caso de uso.
func NewMovementLogUseCase(movementRepo repository.StockMovementRepository, pdfGenerator LogPDFGenerator) *MovementLogUseCase {
	return &MovementLogUseCase{movementRepo: movementRepo, pdfGenerator: pdfGenerator}
}

// GetLogs devuelve los movimientos agrupados por (sesión, tipo, producto),
// del grupo más reciente al más antiguo.
func (uc *MovementLogUseCase) GetLogs(ctx context.Context, q LogQuery) ([]dto.StockLogEntryDTO, error) {
	from, to := resolveRange(q, time.Now())
	rows, err := uc.movementRepo.List(ctx, repository.MovementFilter{
		Type: q.Type,
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, err
	}
	return groupMovements(rows), nil
}

// ExportPDF genera el kardex en PDF con los mismos filtros que GetLogs.
func (uc *MovementLogUseCase) ExportPDF(ctx context.Context, q LogQuery) ([]byte, error) {
	entries, err := uc.GetLogs(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateLogPDF(ctx, entries, time.Now())
}

// resolveRange traduce el atajo con nombre a un rango concreto; si no hay
// atajo, respeta From/To explícitos.
func resolveRange(q LogQuery, now time.Time) (from, to *time.Time) {
	switch q.Named {
	case RangeToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &start, &now
	case Range7Days:
		start := now.AddDate(0, 0, -7)
		return &start, &now
	case Range30Days:
		start := now.AddDate(0, 0, -30)
		return &start, &now
	}
	return q.From, q.To
}

// groupMovements agrega los movimientos por la llave compuesta
// (sesión-o-llave-sintética, tipo, producto):
//   - movimientos que comparten sesión, producto y dirección se funden en una
//     entrada, con el timestamp MÁS ANTIGUO del grupo y la cantidad sumada;
//   - el desglose por lote acumula cantidades por número de lote;
//   - un movimiento sin sesión es siempre su propio grupo (la llave sintética
//     es su propio ID, así dos movimientos sueltos jamás se funden).
//
// La salida queda ordenada por el timestamp representativo, más reciente primero.
func groupMovements(rows []repository.MovementRecord) []dto.StockLogEntryDTO {
	type group struct {
		entry  dto.StockLogEntryDTO
		lotIdx map[string]int
	}
	var groups []*group
	index := make(map[string]*group)

	for _, m := range rows {
		sessionKey := m.SessionID
		if sessionKey == "" {
			sessionKey = "mov:" + m.ID
		}
		key := sessionKey + "|" + m.Type + "|" + m.ProductID

		g, ok := index[key]
		if !ok {
			g = &group{
				entry: dto.StockLogEntryDTO{
					SessionID:     m.SessionID,
					Type:          m.Type,
					CreatedAt:     m.CreatedAt,
					ProductName:   m.ProductName,
					TotalQuantity: m.Quantity,
				},
				lotIdx: make(map[string]int),
			}
			g.lotIdx[m.LotNumber] = 0
			g.entry.Lots = []dto.LotQuantityDTO{{Lot: m.LotNumber, Quantity: m.Quantity}}
			index[key] = g
			groups = append(groups, g)
			continue
		}

		g.entry.TotalQuantity = g.entry.TotalQuantity.Add(m.Quantity)
		if m.CreatedAt.Before(g.entry.CreatedAt) {
			g.entry.CreatedAt = m.CreatedAt
		}
		if i, ok := g.lotIdx[m.LotNumber]; ok {
			g.entry.Lots[i].Quantity = g.entry.Lots[i].Quantity.Add(m.Quantity)
		} else {
			g.lotIdx[m.LotNumber] = len(g.entry.Lots)
			g.entry.Lots = append(g.entry.Lots, dto.LotQuantityDTO{Lot: m.LotNumber, Quantity: m.Quantity})
		}
	}

	entries := make([]dto.StockLogEntryDTO, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, g.entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}
