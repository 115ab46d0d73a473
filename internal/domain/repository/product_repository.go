package repository

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// Search busca por nombre o código de barras (término ya normalizado,
	// sin tildes) con paginación. Devuelve la página y el total de coincidencias.
	Search(term string, limit, offset int) ([]*entity.Product, int, error)
}
