package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del motor de stock (protegido).
type StockHandler struct {
	stockIn  *inventory.StockInUseCase
	stockOut *inventory.StockOutUseCase
	logs     *inventory.MovementLogUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockIn *inventory.StockInUseCase, stockOut *inventory.StockOutUseCase, logs *inventory.MovementLogUseCase) *StockHandler {
	return &StockHandler{stockIn: stockIn, stockOut: stockOut, logs: logs}
}

// StockIn godoc
// @Summary      Entrada masiva de stock
// @Description  Procesa una lista de entradas en una sola transacción.
//
//	200 si todos los items entraron, 207 si alguno falló (producto
//	inexistente); el detalle por item va en results.
//
// @Tags         stock
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "items: barcode, quantity, lotNumber, expireDate|null"
// @Success      200   {object}  dto.StockInResponse
// @Success      207   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := in.Validate(); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	out, err := h.stockIn.Process(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(statusForResults(allInOK(out.Results))).JSON(out)
}

// StockOut godoc
// @Summary      Salida masiva de stock (FEFO)
// @Description  Procesa una lista de salidas en una sola transacción,
//
//	consumiendo primero los lotes más próximos a vencer. Stock
//	insuficiente para cualquier item aborta la llamada completa (409).
//
// @Tags         stock
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "items: barcode, quantity"
// @Success      200   {object}  dto.StockOutResponse
// @Success      207   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := in.Validate(); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	out, err := h.stockOut.Process(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(statusForResults(allOutOK(out.Results))).JSON(out)
}

// GetLogs godoc
// @Summary      Log de movimientos agrupado por sesión
// @Tags         stock
// @Security     ApiKeyAuth
// @Produce      json
// @Param        type      query  string  false  "IN | OUT"
// @Param        fromDate  query  string  false  "YYYY-MM-DD"
// @Param        toDate    query  string  false  "YYYY-MM-DD"
// @Param        filter    query  string  false  "today | 7days | 30days (precede a fromDate/toDate)"
// @Success      200  {object}  dto.StockLogsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/logs [get]
func (h *StockHandler) GetLogs(c *fiber.Ctx) error {
	q, fields := parseLogQuery(c)
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	entries, err := h.logs.GetLogs(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockLogsResponse{Total: len(entries), Logs: entries})
}

// ExportLogs godoc
// @Summary      Kardex en PDF con los mismos filtros que el log
// @Tags         stock
// @Security     ApiKeyAuth
// @Produce      application/pdf
// @Param        type      query  string  false  "IN | OUT"
// @Param        fromDate  query  string  false  "YYYY-MM-DD"
// @Param        toDate    query  string  false  "YYYY-MM-DD"
// @Param        filter    query  string  false  "today | 7days | 30days"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/logs/export [get]
func (h *StockHandler) ExportLogs(c *fiber.Ctx) error {
	q, fields := parseLogQuery(c)
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	pdfBytes, err := h.logs.ExportPDF(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}

// parseLogQuery arma el LogQuery desde los query params, validando tipo y fechas.
func parseLogQuery(c *fiber.Ctx) (inventory.LogQuery, []dto.FieldError) {
	var fields []dto.FieldError
	q := inventory.LogQuery{
		Type:  c.Query("type"),
		Named: c.Query("filter"),
	}
	if q.Type != "" && q.Type != entity.MovementTypeIN && q.Type != entity.MovementTypeOUT {
		fields = append(fields, dto.FieldError{Field: "type", Message: "valores válidos: IN, OUT"})
	}
	switch q.Named {
	case "", inventory.RangeToday, inventory.Range7Days, inventory.Range30Days:
	default:
		fields = append(fields, dto.FieldError{Field: "filter", Message: "valores válidos: today, 7days, 30days"})
	}
	if s := c.Query("fromDate"); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: "fromDate", Message: "formato esperado YYYY-MM-DD"})
		} else {
			q.From = &t
		}
	}
	if s := c.Query("toDate"); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: "toDate", Message: "formato esperado YYYY-MM-DD"})
		} else {
			// Fin de día inclusivo: el filtro toDate cubre el día completo.
			end := t.Add(24*time.Hour - time.Nanosecond)
			q.To = &end
		}
	}
	return q, fields
}

func allInOK(results []dto.StockInItemResult) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}

func allOutOK(results []dto.StockOutItemResult) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}

// statusForResults: 200 si todos los items pasaron, 207 si hubo fallas parciales.
func statusForResults(allOK bool) int {
	if allOK {
		return fiber.StatusOK
	}
	return fiber.StatusMultiStatus
}
