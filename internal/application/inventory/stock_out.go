package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	dominv "github.com/tu-usuario/bodega-api/internal/domain/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// StockOutUseCase procesa salidas masivas con asignación FEFO: por cada item
// consume los lotes del producto del más próximo a vencer al más lejano,
// registrando un movimiento OUT por cada lote tocado.
//
// Política de fallas: un código de barras inexistente es un resultado fallido
// del item y los hermanos continúan; stock insuficiente en cambio aborta la
// llamada masiva completa y se revierte todo lo escrito por los items
// anteriores.
type StockOutUseCase struct {
	txRunner TxRunner
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(txRunner TxRunner) *StockOutUseCase {
	return &StockOutUseCase{txRunner: txRunner}
}

// Process ejecuta la salida masiva dentro de una sola transacción, items en
// secuencia estricta: si dos items tocan el mismo producto, el segundo ve los
// lotes ya rebajados por el primero.
//
// En stock insuficiente devuelve error (errors.Is(err,
// domain.ErrInsufficientStock) == true) y ningún escrito queda persistido.
func (uc *StockOutUseCase) Process(ctx context.Context, req dto.StockOutRequest) (*dto.StockOutResponse, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	results := make([]dto.StockOutItemResult, 0, len(req.Items))
	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.StockBatchRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range req.Items {
			res, err := processOutItem(batchRepo, movementRepo, productRepo, item, sessionID, now)
			if err != nil {
				// Incluye el caso *InsufficientStockError: retornar el error
				// desde el callback hace rollback de toda la llamada.
				return err
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockOutResponse{SessionID: sessionID, Results: results}, nil
}

// processOutItem procesa un item: resuelve producto, bloquea y lee los lotes
// disponibles, delega el reparto al asignador FEFO del dominio y aplica las
// rebajas resultantes.
func processOutItem(
	batchRepo repository.StockBatchRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	item dto.StockOutItemRequest,
	sessionID string,
	now time.Time,
) (*dto.StockOutItemResult, error) {
	product, err := productRepo.GetByBarcode(item.Barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return &dto.StockOutItemResult{
			Barcode:           item.Barcode,
			RequestedQuantity: item.Quantity,
			Success:           false,
			Error:             fmt.Sprintf("Product not found for barcode: %s", item.Barcode),
		}, nil
	}

	batches, err := batchRepo.ListAvailableForUpdate(product.ID)
	if err != nil {
		return nil, err
	}
	available := make([]dominv.AvailableBatch, 0, len(batches))
	byID := make(map[string]*entity.StockBatch, len(batches))
	for _, b := range batches {
		available = append(available, dominv.AvailableBatch{
			BatchID:    b.ID,
			LotNumber:  b.LotNumber,
			ExpireDate: b.ExpireDate,
			Quantity:   b.Quantity,
		})
		byID[b.ID] = b
	}

	alloc, err := dominv.Allocate(available, item.Quantity)
	if err != nil {
		return nil, fmt.Errorf("salida para barcode %s: %w", item.Barcode, err)
	}

	result := &dto.StockOutItemResult{
		Barcode:           item.Barcode,
		ProductID:         product.ID,
		RequestedQuantity: item.Quantity,
		DeductedQuantity:  item.Quantity,
		Success:           true,
	}
	for _, d := range alloc.Deductions {
		batch := byID[d.BatchID]
		batch.Quantity = batch.Quantity.Sub(d.Quantity)
		if err := batchRepo.UpdateQuantity(batch.ID, batch.Quantity); err != nil {
			return nil, err
		}
		movement := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			BatchID:   d.BatchID,
			LotNumber: d.LotNumber,
			Type:      entity.MovementTypeOUT,
			Quantity:  d.Quantity,
			SessionID: sessionID,
			CreatedAt: now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return nil, err
		}
		result.Batches = append(result.Batches, dto.BatchDeductionDTO{
			BatchID:   d.BatchID,
			LotNumber: d.LotNumber,
			Quantity:  d.Quantity,
		})
	}
	return result, nil
}
