package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

func productoArroz() *entity.Product {
	return &entity.Product{
		ID:        "prod-arroz",
		Name:      "Arroz blanco 500g",
		Barcode:   "7701234567890",
		Unit:      "unidad",
		MinStock:  decimal.NewFromInt(10),
		CreatedAt: time.Now(),
	}
}

func stockInItem(barcode, lot string, qty int64, expire string) dto.StockInItemRequest {
	item := dto.StockInItemRequest{
		Barcode:   barcode,
		LotNumber: lot,
		Quantity:  decimal.NewFromInt(qty),
	}
	if expire != "" {
		item.ExpireDate = &expire
	}
	return item
}

// Entrada a un lote nuevo: se crea el lote con la cantidad y el vencimiento
// recibidos y queda registrado un movimiento IN.
func TestStockIn_CreaLoteNuevo(t *testing.T) {
	store := newMemStore(productoArroz())
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store})

	resp, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{stockInItem("7701234567890", "LOT001", 20, "2026-09-01")},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.NotEmpty(t, resp.SessionID)

	res := resp.Results[0]
	assert.True(t, res.Success)
	assert.Equal(t, "prod-arroz", res.ProductID)
	assert.NotEmpty(t, res.BatchID)

	require.Len(t, store.batches, 1)
	assert.True(t, store.batches[0].Quantity.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, store.batches[0].ExpireDate)
	assert.Equal(t, "2026-09-01", store.batches[0].ExpireDate.Format(dto.DateLayout))

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeIN, store.movements[0].Type)
	assert.Equal(t, resp.SessionID, store.movements[0].SessionID)
}

// Entrada repetida al mismo (producto, lote): incrementa el lote existente en
// vez de crear uno duplicado.
func TestStockIn_IncrementaLoteExistente(t *testing.T) {
	store := newMemStore(productoArroz())
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store})

	_, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{stockInItem("7701234567890", "LOT001", 20, "2026-09-01")},
	})
	require.NoError(t, err)

	resp, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{stockInItem("7701234567890", "LOT001", 15, "2026-09-01")},
	})
	require.NoError(t, err)
	assert.True(t, resp.Results[0].Success)

	require.Len(t, store.batches, 1, "no debe crearse un segundo lote para el mismo número")
	assert.True(t, store.batches[0].Quantity.Equal(decimal.NewFromInt(35)))
	assert.Len(t, store.movements, 2, "cada entrada deja su propio movimiento")
}

// Código de barras inexistente: el item falla con el mensaje esperado pero los
// hermanos se procesan, y la respuesta conserva orden y tamaño.
func TestStockIn_ProductoInexistenteNoAbortaHermanos(t *testing.T) {
	store := newMemStore(productoArroz())
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store})

	resp, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{
			stockInItem("0000000000000", "LOTX", 5, ""),
			stockInItem("7701234567890", "LOT001", 20, "2026-09-01"),
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.False(t, resp.Results[0].Success)
	assert.Equal(t, "Product not found for barcode: 0000000000000", resp.Results[0].Error)

	assert.True(t, resp.Results[1].Success)
	require.Len(t, store.batches, 1)
	assert.True(t, store.batches[0].Quantity.Equal(decimal.NewFromInt(20)))
}

// Lote sin fecha de vencimiento: expireDate null se persiste como nil.
func TestStockIn_LoteSinVencimiento(t *testing.T) {
	store := newMemStore(productoArroz())
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store})

	resp, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{stockInItem("7701234567890", "LOT-NV", 8, "")},
	})
	require.NoError(t, err)
	assert.True(t, resp.Results[0].Success)
	require.Len(t, store.batches, 1)
	assert.Nil(t, store.batches[0].ExpireDate)
}

// Todos los movimientos de una misma llamada comparten el sessionId.
func TestStockIn_SessionCompartidaEntreItems(t *testing.T) {
	store := newMemStore(productoArroz())
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store})

	resp, err := uc.Process(context.Background(), dto.StockInRequest{
		Items: []dto.StockInItemRequest{
			stockInItem("7701234567890", "LOT001", 20, "2026-09-01"),
			stockInItem("7701234567890", "LOT002", 30, "2026-10-01"),
		},
	})
	require.NoError(t, err)
	require.Len(t, store.movements, 2)
	assert.Equal(t, resp.SessionID, store.movements[0].SessionID)
	assert.Equal(t, resp.SessionID, store.movements[1].SessionID)
}
