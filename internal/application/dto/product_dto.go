package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Barcode  string          `json:"barcode"`
	Unit     string          `json:"unit"`
	MinStock decimal.Decimal `json:"minStock"`
}

// Validate valida la forma del request.
func (r *CreateProductRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name es requerido"})
	}
	if r.Barcode == "" {
		errs = append(errs, FieldError{Field: "barcode", Message: "barcode es requerido"})
	}
	if r.MinStock.IsNegative() {
		errs = append(errs, FieldError{Field: "minStock", Message: "minStock no puede ser negativo"})
	}
	return errs
}

// UpdateProductRequest body de PUT /api/products/:id. Campos nil = sin cambio.
// Barcode no se modifica: es la llave externa del producto.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Unit     *string          `json:"unit"`
	MinStock *decimal.Decimal `json:"minStock"`
}

// BatchDTO un lote en la respuesta de detalle de producto.
type BatchDTO struct {
	ID         string          `json:"id"`
	LotNumber  string          `json:"lotNumber"`
	ExpireDate *string         `json:"expireDate"` // "YYYY-MM-DD" o null
	Quantity   decimal.Decimal `json:"quantity"`
}

// ProductResponse producto con su stock derivado de lotes y banderas de estado.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode"`
	Unit       string          `json:"unit"`
	MinStock   decimal.Decimal `json:"minStock"`
	TotalStock decimal.Decimal `json:"totalStock"`
	LowStock   bool            `json:"lowStock"`
	NearExpiry bool            `json:"nearExpiry"`
	Expired    bool            `json:"expired"`
	Batches    []BatchDTO      `json:"batches,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ProductListResponse respuesta paginada de GET /api/products.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Products []ProductResponse `json:"products"`
}
