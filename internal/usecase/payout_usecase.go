package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/infrastructure/metrics"
)

// PayoutUseCase handles payout balances, payout requests and the
// merged transaction history feed.
type PayoutUseCase struct {
	orderRepo  OrderRepository
	payoutRepo PayoutRepository
	vendorRepo VendorRepository
	idGen      IDGenerator
	retrier    Retrier
	now        func() time.Time
}

// NewPayoutUseCase creates a new PayoutUseCase.
func NewPayoutUseCase(orderRepo OrderRepository, payoutRepo PayoutRepository, vendorRepo VendorRepository, idGen IDGenerator, retrier Retrier) *PayoutUseCase {
	return &PayoutUseCase{
		orderRepo:  orderRepo,
		payoutRepo: payoutRepo,
		vendorRepo: vendorRepo,
		idGen:      idGen,
		retrier:    retrier,
		now:        time.Now,
	}
}

// Snapshot computes the vendor's current payout snapshot.
func (uc *PayoutUseCase) Snapshot(ctx context.Context, vendorID string) (*domain.PayoutSnapshot, error) {
	lifetime, err := uc.orderRepo.LifetimeEarnings(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	pending, paid, err := uc.payoutRepo.SumByStatus(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	firstOfLastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	windowOrders, err := uc.orderRepo.ListPaidInWindow(ctx, vendorID, firstOfLastMonth, now)
	if err != nil {
		return nil, err
	}

	snap := domain.ComputePayoutSnapshot(domain.VendorTotals{
		LifetimeEarnings: lifetime,
		PendingPayouts:   pending,
		TotalPaidOut:     paid,
	}, windowOrders, now)

	return &snap, nil
}

// RequestPayoutInput represents input for requesting a payout.
type RequestPayoutInput struct {
	VendorID string
	Amount   decimal.Decimal
}

// RequestPayout creates a pending payout after checking the vendor's
// available balance.
func (uc *PayoutUseCase) RequestPayout(ctx context.Context, input RequestPayoutInput) (*domain.Payout, error) {
	if err := domain.ValidateMoneyAmount(input.Amount); err != nil {
		return nil, err
	}

	vendor, err := uc.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}

	snap, err := uc.Snapshot(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(snap.AvailableBalance) {
		return nil, domain.ErrInsufficientBalance
	}

	now := uc.now().UTC()
	payout := &domain.Payout{
		ID:        uc.idGen.Generate(),
		VendorID:  vendor.ID,
		Amount:    input.Amount,
		Currency:  vendor.LedgerCurrency,
		Status:    domain.PayoutPending,
		Account:   vendor.PayoutAccount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.retrier.Retry(ctx, func() error {
		return uc.payoutRepo.Create(ctx, payout)
	})
	if err != nil {
		return nil, err
	}

	metrics.PayoutsRequested.Inc()

	return payout, nil
}

// ListPayouts returns the vendor's payout attempts, newest first.
func (uc *PayoutUseCase) ListPayouts(ctx context.Context, vendorID string) ([]domain.Payout, error) {
	return uc.payoutRepo.ListByVendor(ctx, vendorID)
}

// TransactionsInput represents input for the transaction history feed.
type TransactionsInput struct {
	VendorID string
	Page     int
	Limit    int
	Type     string
}

// TransactionsOutput is a page of the merged transaction feed.
type TransactionsOutput struct {
	Records []domain.TransactionRecord
	Page    int
	Limit   int
	Total   int
	Pages   int
}

// Transactions merges completed orders, payout attempts and refunds
// into one time-sorted feed. The three source reads run concurrently;
// a failing source contributes nothing instead of failing the request.
func (uc *PayoutUseCase) Transactions(ctx context.Context, input TransactionsInput) (*TransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(input.Limit, defaultTransactionPageSize)

	var (
		wg          sync.WaitGroup
		earnings    []domain.TransactionRecord
		withdrawals []domain.TransactionRecord
		refunds     []domain.TransactionRecord
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		orders, err := uc.orderRepo.ListCompletedByVendor(ctx, input.VendorID)
		if err != nil {
			slog.Warn("transactions: earnings source failed", "vendor_id", input.VendorID, "error", err)
			return
		}
		earnings = make([]domain.TransactionRecord, 0, len(orders))
		for _, vo := range orders {
			earnings = append(earnings, domain.EarningRecord(vo))
		}
	}()
	go func() {
		defer wg.Done()
		payouts, err := uc.payoutRepo.ListByVendor(ctx, input.VendorID)
		if err != nil {
			slog.Warn("transactions: payouts source failed", "vendor_id", input.VendorID, "error", err)
			return
		}
		withdrawals = make([]domain.TransactionRecord, 0, len(payouts))
		for _, p := range payouts {
			withdrawals = append(withdrawals, domain.WithdrawalRecord(p))
		}
	}()
	go func() {
		defer wg.Done()
		orders, err := uc.orderRepo.ListRefundedByVendor(ctx, input.VendorID)
		if err != nil {
			slog.Warn("transactions: refunds source failed", "vendor_id", input.VendorID, "error", err)
			return
		}
		refunds = make([]domain.TransactionRecord, 0, len(orders))
		for _, vo := range orders {
			refunds = append(refunds, domain.RefundRecord(vo))
		}
	}()
	wg.Wait()

	merged := domain.MergeTransactions(earnings, withdrawals, refunds)
	filtered := domain.FilterByType(merged, input.Type)
	records, total := domain.Paginate(filtered, page, limit)

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &TransactionsOutput{
		Records: records,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
	}, nil
}
