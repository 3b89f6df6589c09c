package usecase

import (
	"context"
	"time"

	"github.com/oyedot/vendorhub/internal/domain"
)

// AnalyticsUseCase computes sales summaries for the dashboard.
type AnalyticsUseCase struct {
	orderRepo OrderRepository
	now       func() time.Time
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(orderRepo OrderRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// SalesSummaryInput represents input for a sales summary. A zero From
// defaults the window to the trailing 30 days; a zero To means now.
type SalesSummaryInput struct {
	VendorID string
	From     time.Time
	To       time.Time
}

// SalesSummary aggregates the vendor's completed orders in the window.
func (uc *AnalyticsUseCase) SalesSummary(ctx context.Context, input SalesSummaryInput) (*domain.SalesSummary, error) {
	to := input.To
	if to.IsZero() {
		to = uc.now().UTC()
	}
	from := input.From
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}

	orders, err := uc.orderRepo.ListCompletedInWindow(ctx, input.VendorID, from, to)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderRepo.ItemsInWindow(ctx, input.VendorID, from, to)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeSales(orders, items, topProductsLimit)

	return &summary, nil
}
