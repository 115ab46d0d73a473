package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// o se persisten todos los escritos de la llamada masiva, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.StockBatchRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LogPDFGenerator genera el kardex en PDF a partir de los grupos del log.
type LogPDFGenerator interface {
	GenerateLogPDF(ctx context.Context, entries []dto.StockLogEntryDTO, generatedAt time.Time) ([]byte, error)
}
