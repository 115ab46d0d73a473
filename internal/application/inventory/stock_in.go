package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// StockInUseCase procesa entradas masivas de stock: por cada item resuelve el
// producto por código de barras, incrementa (o crea) el lote de
// (producto, número de lote) y registra un movimiento IN en el libro.
//
// Toda la llamada corre en una sola transacción. Un producto inexistente se
// captura como resultado fallido del item y NO aborta a los hermanos; solo un
// error inesperado (infraestructura) revierte la transacción completa.
type StockInUseCase struct {
	txRunner TxRunner
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(txRunner TxRunner) *StockInUseCase {
	return &StockInUseCase{txRunner: txRunner}
}

// Process ejecuta la entrada masiva. Genera un identificador de sesión único
// para la llamada y lo comparte entre todos los movimientos producidos; la
// sesión viaja como parámetro explícito, nunca como estado global.
// El slice de resultados conserva el orden y el tamaño de los items de entrada.
func (uc *StockInUseCase) Process(ctx context.Context, req dto.StockInRequest) (*dto.StockInResponse, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	results := make([]dto.StockInItemResult, 0, len(req.Items))
	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.StockBatchRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range req.Items {
			res, err := processInItem(batchRepo, movementRepo, productRepo, item, sessionID, now)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockInResponse{SessionID: sessionID, Results: results}, nil
}

// processInItem procesa un item dentro de la transacción. Devuelve un
// resultado fallido (no un error) para condiciones de negocio esperadas.
func processInItem(
	batchRepo repository.StockBatchRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	item dto.StockInItemRequest,
	sessionID string,
	now time.Time,
) (*dto.StockInItemResult, error) {
	product, err := productRepo.GetByBarcode(item.Barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return &dto.StockInItemResult{
			Barcode:   item.Barcode,
			LotNumber: item.LotNumber,
			Quantity:  item.Quantity,
			Success:   false,
			Error:     fmt.Sprintf("Product not found for barcode: %s", item.Barcode),
		}, nil
	}

	// Lote existente para (producto, lote): incrementar con fila bloqueada.
	// Si no existe, crear uno nuevo con el vencimiento recibido.
	batch, err := batchRepo.GetByProductAndLotForUpdate(product.ID, item.LotNumber)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		batch = &entity.StockBatch{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			LotNumber:  item.LotNumber,
			ExpireDate: item.ParsedExpireDate(),
			Quantity:   item.Quantity,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := batchRepo.Create(batch); err != nil {
			return nil, err
		}
	} else {
		batch.Quantity = batch.Quantity.Add(item.Quantity)
		if err := batchRepo.UpdateQuantity(batch.ID, batch.Quantity); err != nil {
			return nil, err
		}
	}

	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		BatchID:   batch.ID,
		LotNumber: item.LotNumber,
		Type:      entity.MovementTypeIN,
		Quantity:  item.Quantity,
		SessionID: sessionID,
		CreatedAt: now,
	}
	if err := movementRepo.Create(movement); err != nil {
		return nil, err
	}

	return &dto.StockInItemResult{
		Barcode:   item.Barcode,
		ProductID: product.ID,
		BatchID:   batch.ID,
		LotNumber: item.LotNumber,
		Quantity:  item.Quantity,
		Success:   true,
	}, nil
}
