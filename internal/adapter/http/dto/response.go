package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// VendorResponse represents a vendor in API responses.
type VendorResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	LedgerCurrency string    `json:"ledger_currency"`
	PayoutAccount  string    `json:"payout_account"`
	CreatedAt      time.Time `json:"created_at"`
}

// VendorFromDomain converts a domain vendor to a response.
func VendorFromDomain(v *domain.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		LedgerCurrency: v.LedgerCurrency,
		PayoutAccount:  v.PayoutAccount,
		CreatedAt:      v.CreatedAt,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token  string          `json:"token"`
	Vendor *VendorResponse `json:"vendor"`
}

// RateResponse represents one exchange rate quote.
type RateResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CurrencyInfoResponse represents the currency metadata view.
type CurrencyInfoResponse struct {
	SupportedCurrencies []string       `json:"supported_currencies"`
	DefaultCurrency     string         `json:"default_currency"`
	ExchangeRates       []RateResponse `json:"exchange_rates"`
	LastUpdated         time.Time      `json:"last_updated"`
}

// CurrencyInfoFromUseCase converts rate info to a response.
func CurrencyInfoFromUseCase(info *usecase.RateInfo) *CurrencyInfoResponse {
	rates := make([]RateResponse, len(info.ExchangeRates))
	for i, r := range info.ExchangeRates {
		rates[i] = RateResponse{From: r.From, To: r.To, Rate: r.Rate, UpdatedAt: r.UpdatedAt}
	}
	return &CurrencyInfoResponse{
		SupportedCurrencies: info.SupportedCurrencies,
		DefaultCurrency:     info.DefaultCurrency,
		ExchangeRates:       rates,
		LastUpdated:         info.LastUpdated,
	}
}

// ConvertResponse represents a single-amount conversion result.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
}

// PriceSetResponse represents converted price fields.
type PriceSetResponse struct {
	Price     *decimal.Decimal `json:"price,omitempty"`
	MRP       *decimal.Decimal `json:"mrp,omitempty"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
}

// ConvertedPricesResponse represents a batch conversion result keyed by
// target currency. Targets with no rate path are absent.
type ConvertedPricesResponse struct {
	From   string                      `json:"from"`
	Prices map[string]PriceSetResponse `json:"prices"`
}

// ConvertedPricesFromDomain converts a batch conversion result.
func ConvertedPricesFromDomain(from string, prices map[string]domain.PriceSet) *ConvertedPricesResponse {
	out := make(map[string]PriceSetResponse, len(prices))
	for currency, ps := range prices {
		out[currency] = PriceSetResponse{Price: ps.Price, MRP: ps.MRP, SalePrice: ps.SalePrice}
	}
	return &ConvertedPricesResponse{From: from, Prices: out}
}

// PayoutSnapshotResponse represents the dashboard balance view.
type PayoutSnapshotResponse struct {
	AvailableBalance  decimal.Decimal `json:"available_balance"`
	PendingBalance    decimal.Decimal `json:"pending_balance"`
	LifetimeEarnings  decimal.Decimal `json:"lifetime_earnings"`
	ThisMonthEarnings decimal.Decimal `json:"this_month_earnings"`
	LastMonthEarnings decimal.Decimal `json:"last_month_earnings"`
}

// PayoutSnapshotFromDomain converts a payout snapshot to a response.
func PayoutSnapshotFromDomain(s *domain.PayoutSnapshot) *PayoutSnapshotResponse {
	return &PayoutSnapshotResponse{
		AvailableBalance:  s.AvailableBalance,
		PendingBalance:    s.PendingBalance,
		LifetimeEarnings:  s.LifetimeEarnings,
		ThisMonthEarnings: s.ThisMonthEarnings,
		LastMonthEarnings: s.LastMonthEarnings,
	}
}

// PayoutResponse represents a payout attempt in API responses.
type PayoutResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	Account     string          `json:"account"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PayoutFromDomain converts a domain payout to a response.
func PayoutFromDomain(p *domain.Payout) *PayoutResponse {
	return &PayoutResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      string(p.Status),
		Account:     p.Account,
		ProcessedAt: p.ProcessedAt,
		CreatedAt:   p.CreatedAt,
	}
}

// PayoutsFromDomain converts domain payouts to responses.
func PayoutsFromDomain(payouts []domain.Payout) []*PayoutResponse {
	result := make([]*PayoutResponse, len(payouts))
	for i := range payouts {
		result[i] = PayoutFromDomain(&payouts[i])
	}
	return result
}

// TransactionResponse represents one entry of the transaction feed.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	OrderID     string          `json:"order_id,omitempty"`
}

// TransactionPageResponse represents a page of the transaction feed.
type TransactionPageResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Total        int                   `json:"total"`
	Pages        int                   `json:"pages"`
}

// TransactionPageFromUseCase converts a feed page to a response.
func TransactionPageFromUseCase(out *usecase.TransactionsOutput) *TransactionPageResponse {
	records := make([]TransactionResponse, len(out.Records))
	for i, r := range out.Records {
		records[i] = TransactionResponse{
			ID:          r.ID,
			Type:        string(r.Type),
			Description: r.Description,
			Amount:      r.Amount,
			Currency:    r.Currency,
			Date:        r.Date,
			Status:      r.Status,
			OrderID:     r.OrderID,
		}
	}
	return &TransactionPageResponse{
		Transactions: records,
		Page:         out.Page,
		Limit:        out.Limit,
		Total:        out.Total,
		Pages:        out.Pages,
	}
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Currency    string           `json:"currency"`
	Price       decimal.Decimal  `json:"price"`
	MRP         decimal.Decimal  `json:"mrp"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Stock       int              `json:"stock"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductFromDomain converts a domain product to a response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Category:    p.Category,
		Currency:    p.Currency,
		Price:       p.Price,
		MRP:         p.MRP,
		SalePrice:   p.SalePrice,
		Stock:       p.Stock,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// OrderResponse represents a vendor order in API responses. ItemsTotal
// is the vendor's line-item share of the order.
type OrderResponse struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	ItemsTotal        decimal.Decimal `json:"items_total"`
	Currency          string          `json:"currency"`
	PaymentStatus     string          `json:"payment_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OrderFromDomain converts a vendor order to a response.
func OrderFromDomain(vo *domain.VendorOrder) *OrderResponse {
	return &OrderResponse{
		ID:                vo.Order.ID,
		CustomerID:        vo.Order.CustomerID,
		ItemsTotal:        vo.ItemsTotal,
		Currency:          vo.Order.Currency,
		PaymentStatus:     string(vo.Order.PaymentStatus),
		FulfillmentStatus: string(vo.Order.FulfillmentStatus),
		DeliveredAt:       vo.Order.DeliveredAt,
		CreatedAt:         vo.Order.CreatedAt,
		UpdatedAt:         vo.Order.UpdatedAt,
	}
}

// OrdersFromDomain converts vendor orders to responses.
func OrdersFromDomain(orders []domain.VendorOrder) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i := range orders {
		result[i] = OrderFromDomain(&orders[i])
	}
	return result
}

// OrderItemResponse represents one line item.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderDetailResponse represents an order with its line items.
type OrderDetailResponse struct {
	Order *OrderResponse      `json:"order"`
	Items []OrderItemResponse `json:"items"`
}

// OrderDetailFromUseCase converts an order detail to a response.
func OrderDetailFromUseCase(detail *usecase.OrderDetail) *OrderDetailResponse {
	items := make([]OrderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return &OrderDetailResponse{
		Order: OrderFromDomain(&detail.Order),
		Items: items,
	}
}

// EscrowEntryResponse represents an escrow entry in API responses.
type EscrowEntryResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	HeldAt     time.Time       `json:"held_at"`
	ReleaseAt  time.Time       `json:"release_at"`
	ReleasedAt *time.Time      `json:"released_at,omitempty"`
}

// EscrowEntriesFromDomain converts escrow entries to responses.
func EscrowEntriesFromDomain(entries []domain.EscrowEntry) []*EscrowEntryResponse {
	result := make([]*EscrowEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = &EscrowEntryResponse{
			ID:         e.ID,
			OrderID:    e.OrderID,
			Amount:     e.Amount,
			Currency:   e.Currency,
			Status:     string(e.Status),
			HeldAt:     e.HeldAt,
			ReleaseAt:  e.ReleaseAt,
			ReleasedAt: e.ReleasedAt,
		}
	}
	return result
}

// EscrowSummaryResponse represents a vendor's escrow position.
type EscrowSummaryResponse struct {
	HeldTotal     decimal.Decimal `json:"held_total"`
	ReleasedTotal decimal.Decimal `json:"released_total"`
	HeldCount     int             `json:"held_count"`
	ReleasedCount int             `json:"released_count"`
}

// EscrowSummaryFromDomain converts an escrow summary to a response.
func EscrowSummaryFromDomain(s *domain.EscrowSummary) *EscrowSummaryResponse {
	return &EscrowSummaryResponse{
		HeldTotal:     s.HeldTotal,
		ReleasedTotal: s.ReleasedTotal,
		HeldCount:     s.HeldCount,
		ReleasedCount: s.ReleasedCount,
	}
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	OrderID   string     `json:"order_id,omitempty"`
	Customer  string     `json:"customer"`
	Rating    int        `json:"rating"`
	Title     string     `json:"title,omitempty"`
	Body      string     `json:"body"`
	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReviewFromDomain converts a domain review to a response.
func ReviewFromDomain(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		OrderID:   r.OrderID,
		Customer:  r.Customer,
		Rating:    r.Rating,
		Title:     r.Title,
		Body:      r.Body,
		Reply:     r.Reply,
		RepliedAt: r.RepliedAt,
		CreatedAt: r.CreatedAt,
	}
}

// ReviewsFromDomain converts domain reviews to responses.
func ReviewsFromDomain(reviews []domain.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, len(reviews))
	for i := range reviews {
		result[i] = ReviewFromDomain(&reviews[i])
	}
	return result
}

// QuestionResponse represents a product question in API responses.
type QuestionResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	Customer   string     `json:"customer"`
	Body       string     `json:"body"`
	Answer     string     `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// QuestionFromDomain converts a domain question to a response.
func QuestionFromDomain(q *domain.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:         q.ID,
		ProductID:  q.ProductID,
		Customer:   q.Customer,
		Body:       q.Body,
		Answer:     q.Answer,
		AnsweredAt: q.AnsweredAt,
		CreatedAt:  q.CreatedAt,
	}
}

// QuestionsFromDomain converts domain questions to responses.
func QuestionsFromDomain(questions []domain.Question) []*QuestionResponse {
	result := make([]*QuestionResponse, len(questions))
	for i := range questions {
		result[i] = QuestionFromDomain(&questions[i])
	}
	return result
}

// TicketResponse represents a support ticket in API responses.
type TicketResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketFromDomain converts a domain ticket to a response.
func TicketFromDomain(t *domain.SupportTicket) *TicketResponse {
	return &TicketResponse{
		ID:        t.ID,
		Subject:   t.Subject,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TicketsFromDomain converts domain tickets to responses.
func TicketsFromDomain(tickets []domain.SupportTicket) []*TicketResponse {
	result := make([]*TicketResponse, len(tickets))
	for i := range tickets {
		result[i] = TicketFromDomain(&tickets[i])
	}
	return result
}

// TicketMessageResponse represents one message of a ticket thread.
type TicketMessageResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketMessageFromDomain converts a ticket message to a response.
func TicketMessageFromDomain(m *domain.TicketMessage) *TicketMessageResponse {
	return &TicketMessageResponse{
		ID:        m.ID,
		Author:    string(m.Author),
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// TicketDetailResponse represents a ticket with its thread.
type TicketDetailResponse struct {
	Ticket   *TicketResponse         `json:"ticket"`
	Messages []TicketMessageResponse `json:"messages"`
}

// TicketDetailFromUseCase converts a ticket detail to a response.
func TicketDetailFromUseCase(detail *usecase.TicketDetail) *TicketDetailResponse {
	messages := make([]TicketMessageResponse, len(detail.Messages))
	for i := range detail.Messages {
		messages[i] = *TicketMessageFromDomain(&detail.Messages[i])
	}
	return &TicketDetailResponse{
		Ticket:   TicketFromDomain(&detail.Ticket),
		Messages: messages,
	}
}

// ProductSalesResponse represents one product's sales inside a window.
type ProductSalesResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesSummaryResponse represents the analytics view for a window.
type SalesSummaryResponse struct {
	Orders        int                    `json:"orders"`
	Revenue       decimal.Decimal        `json:"revenue"`
	AvgOrderValue decimal.Decimal        `json:"avg_order_value"`
	UnitsSold     int                    `json:"units_sold"`
	TopProducts   []ProductSalesResponse `json:"top_products"`
}

// SalesSummaryFromDomain converts a sales summary to a response.
func SalesSummaryFromDomain(s *domain.SalesSummary) *SalesSummaryResponse {
	top := make([]ProductSalesResponse, len(s.TopProducts))
	for i, p := range s.TopProducts {
		top[i] = ProductSalesResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Units:     p.Units,
			Revenue:   p.Revenue,
		}
	}
	return &SalesSummaryResponse{
		Orders:        s.Orders,
		Revenue:       s.Revenue,
		AvgOrderValue: s.AvgOrderValue,
		UnitsSold:     s.UnitsSold,
		TopProducts:   top,
	}
}
