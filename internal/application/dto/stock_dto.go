package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas en la API (fechas de vencimiento y filtros).
const DateLayout = "2006-01-02"

// ── Entradas (stock-in) ───────────────────────────────────────────────────────

// StockInItemRequest un renglón de la entrada masiva.
type StockInItemRequest struct {
	Barcode    string          `json:"barcode"`
	Quantity   decimal.Decimal `json:"quantity"`
	LotNumber  string          `json:"lotNumber"`
	ExpireDate *string         `json:"expireDate"` // "YYYY-MM-DD" o null = no vence
}

// StockInRequest body de POST /api/stock/in.
type StockInRequest struct {
	Items []StockInItemRequest `json:"items"`
}

// Validate valida la forma del request antes de tocar el motor de inventario.
// Devuelve la lista completa de errores de campo (vacía = válido).
func (r *StockInRequest) Validate() []FieldError {
	var errs []FieldError
	if len(r.Items) == 0 {
		return append(errs, FieldError{Field: "items", Message: "se requiere al menos un item"})
	}
	for i, it := range r.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if it.Barcode == "" {
			errs = append(errs, FieldError{Field: prefix + ".barcode", Message: "barcode es requerido"})
		}
		errs = append(errs, validateQuantity(prefix, it.Quantity)...)
		if it.LotNumber == "" {
			errs = append(errs, FieldError{Field: prefix + ".lotNumber", Message: "lotNumber es requerido"})
		}
		if it.ExpireDate != nil && *it.ExpireDate != "" {
			if _, err := time.Parse(DateLayout, *it.ExpireDate); err != nil {
				errs = append(errs, FieldError{Field: prefix + ".expireDate", Message: "formato esperado YYYY-MM-DD"})
			}
		}
	}
	return errs
}

// ParsedExpireDate devuelve la fecha de vencimiento parseada, o nil si el
// item no vence (campo ausente o vacío). Llamar después de Validate.
func (it *StockInItemRequest) ParsedExpireDate() *time.Time {
	if it.ExpireDate == nil || *it.ExpireDate == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, *it.ExpireDate)
	if err != nil {
		return nil
	}
	return &t
}

// StockInItemResult resultado por item de la entrada.
type StockInItemResult struct {
	Barcode   string          `json:"barcode"`
	ProductID string          `json:"productId,omitempty"`
	BatchID   string          `json:"batchId,omitempty"`
	LotNumber string          `json:"lotNumber"`
	Quantity  decimal.Decimal `json:"quantity"`
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
}

// StockInResponse respuesta de POST /api/stock/in.
type StockInResponse struct {
	SessionID string              `json:"sessionId"`
	Results   []StockInItemResult `json:"results"`
}

// ── Salidas (stock-out) ───────────────────────────────────────────────────────

// StockOutItemRequest un renglón de la salida masiva.
type StockOutItemRequest struct {
	Barcode  string          `json:"barcode"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockOutRequest body de POST /api/stock/out.
type StockOutRequest struct {
	Items []StockOutItemRequest `json:"items"`
}

// Validate valida la forma del request. Misma disciplina que StockInRequest.
func (r *StockOutRequest) Validate() []FieldError {
	var errs []FieldError
	if len(r.Items) == 0 {
		return append(errs, FieldError{Field: "items", Message: "se requiere al menos un item"})
	}
	for i, it := range r.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if it.Barcode == "" {
			errs = append(errs, FieldError{Field: prefix + ".barcode", Message: "barcode es requerido"})
		}
		errs = append(errs, validateQuantity(prefix, it.Quantity)...)
	}
	return errs
}

// BatchDeductionDTO rebaja aplicada a un lote en una salida.
type BatchDeductionDTO struct {
	BatchID   string          `json:"batchId"`
	LotNumber string          `json:"lotNumber"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StockOutItemResult resultado por item de la salida. En éxito,
// DeductedQuantity siempre es igual a RequestedQuantity.
type StockOutItemResult struct {
	Barcode           string              `json:"barcode"`
	ProductID         string              `json:"productId,omitempty"`
	RequestedQuantity decimal.Decimal     `json:"requestedQuantity"`
	DeductedQuantity  decimal.Decimal     `json:"deductedQuantity"`
	Batches           []BatchDeductionDTO `json:"batches,omitempty"`
	Success           bool                `json:"success"`
	Error             string              `json:"error,omitempty"`
}

// StockOutResponse respuesta de POST /api/stock/out.
type StockOutResponse struct {
	SessionID string               `json:"sessionId"`
	Results   []StockOutItemResult `json:"results"`
}

// ── Logs ─────────────────────────────────────────────────────────────────────

// LotQuantityDTO cantidad acumulada por lote dentro de un grupo del log.
type LotQuantityDTO struct {
	Lot      string          `json:"lot"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockLogEntryDTO un grupo del log de movimientos (sesión + tipo + producto).
type StockLogEntryDTO struct {
	SessionID     string           `json:"sessionId,omitempty"`
	Type          string           `json:"type"`
	CreatedAt     time.Time        `json:"createdAt"` // timestamp más antiguo del grupo
	ProductName   string           `json:"productName"`
	TotalQuantity decimal.Decimal  `json:"totalQuantity"`
	Lots          []LotQuantityDTO `json:"lots"`
}

// StockLogsResponse respuesta de GET /api/stock/logs.
type StockLogsResponse struct {
	Total int                `json:"total"`
	Logs  []StockLogEntryDTO `json:"logs"`
}

// validateQuantity exige cantidad entera y positiva (las cantidades del
// almacén son unidades completas).
func validateQuantity(prefix string, q decimal.Decimal) []FieldError {
	var errs []FieldError
	if !q.GreaterThan(decimal.Zero) {
		errs = append(errs, FieldError{Field: prefix + ".quantity", Message: "quantity debe ser mayor que cero"})
	} else if !q.IsInteger() {
		errs = append(errs, FieldError{Field: prefix + ".quantity", Message: "quantity debe ser un entero"})
	}
	return errs
}
