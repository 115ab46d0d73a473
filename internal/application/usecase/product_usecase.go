package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y búsqueda para productos. El stock no se
// edita aquí: se deriva de los lotes y solo cambia vía movimientos.
type ProductUseCase struct {
	productRepo    repository.ProductRepository
	batchRepo      repository.StockBatchRepository
	nearExpiryDays int
}

// NewProductUseCase construye el caso de uso. nearExpiryDays define la ventana
// de la bandera "por vencer" (lotes que vencen dentro de esos días).
func NewProductUseCase(productRepo repository.ProductRepository, batchRepo repository.StockBatchRepository, nearExpiryDays int) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, batchRepo: batchRepo, nearExpiryDays: nearExpiryDays}
}

// Create crea un producto nuevo. El código de barras debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Unit == "" {
		in.Unit = "unidad"
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Barcode:   in.Barcode,
		Unit:      in.Unit,
		MinStock:  in.MinStock,
		CreatedAt: time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product, nil, false)
}

// GetByID obtiene un producto con sus lotes y banderas de estado. nil = no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product, nil, true)
}

// GetByBarcode obtiene un producto por código de barras, con lotes.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product, nil, true)
}

// Update actualiza nombre, unidad o umbral. Barcode es inmutable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product, nil, true)
}

// Delete elimina un producto (cascada sobre lotes y movimientos en la BD).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

// Search lista productos paginados. El término se normaliza (minúsculas, sin
// tildes) para que "azúcar" y "azucar" encuentren lo mismo.
func (uc *ProductUseCase) Search(term string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, total, err := uc.productRepo.Search(NormalizeSearchTerm(term), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
		Products: make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp, err := uc.toResponse(p, nil, false)
		if err != nil {
			return nil, err
		}
		out.Products = append(out.Products, *resp)
	}
	return out, nil
}

// toResponse arma la respuesta con stock total y banderas derivadas de los
// lotes. includeBatches añade el desglose por lote (detalle de producto).
func (uc *ProductUseCase) toResponse(product *entity.Product, batches []*entity.StockBatch, includeBatches bool) (*dto.ProductResponse, error) {
	if batches == nil {
		var err error
		batches, err = uc.batchRepo.ListByProduct(product.ID)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now()
	nearLimit := now.AddDate(0, 0, uc.nearExpiryDays)

	resp := &dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Barcode:   product.Barcode,
		Unit:      product.Unit,
		MinStock:  product.MinStock,
		CreatedAt: product.CreatedAt,
	}
	for _, b := range batches {
		resp.TotalStock = resp.TotalStock.Add(b.Quantity)
		if b.Quantity.IsPositive() && b.ExpireDate != nil {
			if b.Expired(now) {
				resp.Expired = true
			} else if b.ExpireDate.Before(nearLimit) {
				resp.NearExpiry = true
			}
		}
		if includeBatches {
			var expire *string
			if b.ExpireDate != nil {
				s := b.ExpireDate.Format(dto.DateLayout)
				expire = &s
			}
			resp.Batches = append(resp.Batches, dto.BatchDTO{
				ID:         b.ID,
				LotNumber:  b.LotNumber,
				ExpireDate: expire,
				Quantity:   b.Quantity,
			})
		}
	}
	resp.LowStock = resp.TotalStock.LessThan(product.MinStock)
	return resp, nil
}

// searchNormalizer descompone y elimina marcas diacríticas (NFD → sin Mn → NFC).
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearchTerm normaliza un término de búsqueda: minúsculas, sin
// espacios sobrantes y sin tildes.
func NormalizeSearchTerm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return s
	}
	return out
}
