package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
)

// CatalogUseCase handles the vendor product catalog.
type CatalogUseCase struct {
	productRepo ProductRepository
	idGen       IDGenerator
	now         func() time.Time
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(productRepo ProductRepository, idGen IDGenerator) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// CreateProductInput represents input for creating a product.
type CreateProductInput struct {
	VendorID    string
	Name        string
	SKU         string
	Description string
	Category    string
	Currency    string
	Price       decimal.Decimal
	MRP         decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       int
}

// CreateProduct creates a new active product.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	now := uc.now().UTC()

	product := &domain.Product{
		ID:          uc.idGen.Generate(),
		VendorID:    input.VendorID,
		Name:        input.Name,
		SKU:         input.SKU,
		Description: input.Description,
		Category:    input.Category,
		Currency:    domain.NormalizeCurrencyCode(input.Currency),
		Price:       input.Price,
		MRP:         input.MRP,
		SalePrice:   input.SalePrice,
		Stock:       input.Stock,
		Status:      domain.ProductActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.MRP.IsZero() {
		product.MRP = product.Price
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a vendor's product by ID. Products of other
// vendors are reported as not found.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, vendorID, productID string) (*domain.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != vendorID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// UpdateProductInput represents input for updating a product.
type UpdateProductInput struct {
	VendorID    string
	ProductID   string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	MRP         decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       int
}

// UpdateProduct updates the mutable fields of a product.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	product, err := uc.GetProduct(ctx, input.VendorID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Status == domain.ProductArchived {
		return nil, domain.ErrProductArchived
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.MRP = input.MRP
	product.SalePrice = input.SalePrice
	product.Stock = input.Stock
	product.UpdatedAt = uc.now().UTC()
	if product.MRP.IsZero() {
		product.MRP = product.Price
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ArchiveProduct hides a product from the storefront.
func (uc *CatalogUseCase) ArchiveProduct(ctx context.Context, vendorID, productID string) (*domain.Product, error) {
	product, err := uc.GetProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	product.Status = domain.ProductArchived
	product.UpdatedAt = uc.now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ListProductsInput represents input for listing products.
type ListProductsInput struct {
	VendorID string
	Limit    int
	Offset   int
}

// ListProducts lists a vendor's products with pagination.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*domain.Product, error) {
	limit := clampLimit(input.Limit, defaultPageSize)
	return uc.productRepo.List(ctx, input.VendorID, limit, input.Offset)
}
