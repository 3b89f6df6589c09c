package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool querier
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, vendor_id, name, sku, description, category, currency, price, mrp, sale_price, stock, status, created_at, updated_at`

const createProductQuery = `
INSERT INTO products (` + productColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// Create creates a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.pool.Exec(ctx, createProductQuery,
		product.ID,
		product.VendorID,
		product.Name,
		product.SKU,
		product.Description,
		product.Category,
		product.Currency,
		decimalToNumeric(product.Price),
		decimalToNumeric(product.MRP),
		decimalPtrToNumeric(product.SalePrice),
		product.Stock,
		string(product.Status),
		timeToPgTimestamptz(product.CreatedAt),
		timeToPgTimestamptz(product.UpdatedAt),
	)

	return err
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

const updateProductQuery = `
UPDATE products
SET name = $2, sku = $3, description = $4, category = $5, currency = $6,
    price = $7, mrp = $8, sale_price = $9, stock = $10, status = $11, updated_at = $12
WHERE id = $1`

// Update updates an existing product.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	tag, err := r.pool.Exec(ctx, updateProductQuery,
		product.ID,
		product.Name,
		product.SKU,
		product.Description,
		product.Category,
		product.Currency,
		decimalToNumeric(product.Price),
		decimalToNumeric(product.MRP),
		decimalPtrToNumeric(product.SalePrice),
		product.Stock,
		string(product.Status),
		timeToPgTimestamptz(product.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

const listProductsQuery = `
SELECT ` + productColumns + `
FROM products
WHERE vendor_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// List lists a vendor's products with pagination.
func (r *ProductRepository) List(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsQuery, vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

const upsertProductPriceQuery = `
INSERT INTO product_prices (product_id, currency, price, mrp, sale_price, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (product_id, currency)
DO UPDATE SET price = EXCLUDED.price, mrp = EXCLUDED.mrp,
              sale_price = EXCLUDED.sale_price, updated_at = EXCLUDED.updated_at`

// SaveConvertedPrices upserts one converted price row per target currency.
func (r *ProductRepository) SaveConvertedPrices(ctx context.Context, productID string, prices map[string]domain.PriceSet, updatedAt time.Time) error {
	for currency, ps := range prices {
		_, err := r.pool.Exec(ctx, upsertProductPriceQuery,
			productID,
			currency,
			decimalPtrToNumeric(ps.Price),
			decimalPtrToNumeric(ps.MRP),
			decimalPtrToNumeric(ps.SalePrice),
			timeToPgTimestamptz(updatedAt),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p         domain.Product
		price     pgtype.Numeric
		mrp       pgtype.Numeric
		salePrice pgtype.Numeric
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&p.ID, &p.VendorID, &p.Name, &p.SKU, &p.Description, &p.Category, &p.Currency,
		&price, &mrp, &salePrice, &p.Stock, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.Price = numericToDecimal(price)
	p.MRP = numericToDecimal(mrp)
	p.SalePrice = numericToDecimalPtr(salePrice)
	p.Status = domain.ProductStatus(status)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
