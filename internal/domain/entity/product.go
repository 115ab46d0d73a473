package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del almacén, identificado externamente por su
// código de barras. El stock no vive aquí: se deriva de sus lotes (StockBatch).
type Product struct {
	ID        string
	Name      string
	Barcode   string          // único, llave de búsqueda externa
	Unit      string          // unidad de medida para mostrar (ej. "unidad", "caja")
	MinStock  decimal.Decimal // umbral de reposición
	CreatedAt time.Time
}
