package dto

import (
	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// LoginRequest represents a vendor login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConvertRequest represents a single-amount conversion request.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}

// ToUseCaseInput converts to use case input.
func (r *ConvertRequest) ToUseCaseInput() usecase.ConvertInput {
	return usecase.ConvertInput{
		Amount: r.Amount,
		From:   r.From,
		To:     r.To,
	}
}

// PriceSetPayload carries the convertible price fields of a product.
type PriceSetPayload struct {
	Price     *decimal.Decimal `json:"price,omitempty"`
	MRP       *decimal.Decimal `json:"mrp,omitempty"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
}

// ConvertPricesRequest represents a batch price conversion request.
// ProductID is optional; when set, the converted prices are persisted.
type ConvertPricesRequest struct {
	ProductID string          `json:"product_id,omitempty"`
	Prices    PriceSetPayload `json:"prices"`
	From      string          `json:"from"`
	Targets   []string        `json:"targets"`
}

// ToUseCaseInput converts to use case input.
func (r *ConvertPricesRequest) ToUseCaseInput(vendorID string) usecase.ConvertPricesInput {
	return usecase.ConvertPricesInput{
		ProductID: r.ProductID,
		VendorID:  vendorID,
		Prices: domain.PriceSet{
			Price:     r.Prices.Price,
			MRP:       r.Prices.MRP,
			SalePrice: r.Prices.SalePrice,
		},
		From:    r.From,
		Targets: r.Targets,
	}
}

// RequestPayoutRequest represents a payout request.
type RequestPayoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RequestPayoutRequest) ToUseCaseInput(vendorID string) usecase.RequestPayoutInput {
	return usecase.RequestPayoutInput{
		VendorID: vendorID,
		Amount:   r.Amount,
	}
}

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Currency    string           `json:"currency"`
	Price       decimal.Decimal  `json:"price"`
	MRP         decimal.Decimal  `json:"mrp"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Stock       int              `json:"stock"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput(vendorID string) usecase.CreateProductInput {
	return usecase.CreateProductInput{
		VendorID:    vendorID,
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Category:    r.Category,
		Currency:    r.Currency,
		Price:       r.Price,
		MRP:         r.MRP,
		SalePrice:   r.SalePrice,
		Stock:       r.Stock,
	}
}

// UpdateProductRequest represents a request to update a product.
type UpdateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	MRP         decimal.Decimal  `json:"mrp"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Stock       int              `json:"stock"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProductRequest) ToUseCaseInput(vendorID, productID string) usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		VendorID:    vendorID,
		ProductID:   productID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		MRP:         r.MRP,
		SalePrice:   r.SalePrice,
		Stock:       r.Stock,
	}
}

// UpdateFulfillmentRequest represents a fulfillment status change.
type UpdateFulfillmentRequest struct {
	Status string `json:"status"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateFulfillmentRequest) ToUseCaseInput(vendorID, orderID string) usecase.UpdateFulfillmentInput {
	return usecase.UpdateFulfillmentInput{
		VendorID: vendorID,
		OrderID:  orderID,
		Status:   domain.FulfillmentStatus(r.Status),
	}
}

// ReplyToReviewRequest represents a vendor reply to a review.
type ReplyToReviewRequest struct {
	Reply string `json:"reply"`
}

// AnswerQuestionRequest represents a vendor answer to a question.
type AnswerQuestionRequest struct {
	Answer string `json:"answer"`
}

// CreateTicketRequest represents a request to open a support ticket.
type CreateTicketRequest struct {
	Subject  string `json:"subject"`
	Priority string `json:"priority"`
	Body     string `json:"body"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTicketRequest) ToUseCaseInput(vendorID string) usecase.CreateTicketInput {
	return usecase.CreateTicketInput{
		VendorID: vendorID,
		Subject:  r.Subject,
		Priority: domain.TicketPriority(r.Priority),
		Body:     r.Body,
	}
}

// TicketReplyRequest represents a vendor message on a ticket thread.
type TicketReplyRequest struct {
	Body string `json:"body"`
}
