package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus tracks catalog visibility.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductArchived   ProductStatus = "archived"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// Product is a catalog entry owned by a vendor. MRP is the list price
// before discounts; SalePrice is optional.
type Product struct {
	ID          string
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
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceSetFor extracts the convertible fields of the product.
func (p *Product) PriceSetFor() PriceSet {
	price := p.Price
	mrp := p.MRP
	ps := PriceSet{Price: &price, MRP: &mrp}
	if p.SalePrice != nil {
		sale := *p.SalePrice
		ps.SalePrice = &sale
	}
	return ps
}

// Validate checks product invariants before persisting.
func (p *Product) Validate() error {
	if err := ValidateProductName(p.Name); err != nil {
		return err
	}
	if err := ValidateCurrencyCode(p.Currency); err != nil {
		return err
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if p.SalePrice != nil && p.SalePrice.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}
