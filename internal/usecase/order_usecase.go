package usecase

import (
	"context"
	"time"

	"github.com/oyedot/vendorhub/internal/domain"
)

// OrderUseCase handles vendor order views and fulfillment updates.
type OrderUseCase struct {
	orderRepo    OrderRepository
	escrowRepo   EscrowRepository
	txManager    TransactionManager
	idGen        IDGenerator
	retrier      Retrier
	returnWindow time.Duration
	now          func() time.Time
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(orderRepo OrderRepository, escrowRepo EscrowRepository, txManager TransactionManager, idGen IDGenerator, retrier Retrier, returnWindow time.Duration) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		escrowRepo:   escrowRepo,
		txManager:    txManager,
		idGen:        idGen,
		retrier:      retrier,
		returnWindow: returnWindow,
		now:          time.Now,
	}
}

// ListOrdersInput represents input for listing vendor orders.
type ListOrdersInput struct {
	VendorID string
	Limit    int
	Offset   int
}

// ListOrders lists the vendor's orders with their line-item totals.
func (uc *OrderUseCase) ListOrders(ctx context.Context, input ListOrdersInput) ([]domain.VendorOrder, error) {
	limit := clampLimit(input.Limit, defaultPageSize)
	return uc.orderRepo.ListByVendor(ctx, input.VendorID, limit, input.Offset)
}

// OrderDetail pairs a vendor order with its line items.
type OrderDetail struct {
	Order domain.VendorOrder
	Items []domain.OrderItem
}

// GetOrder retrieves one of the vendor's orders with line items.
func (uc *OrderUseCase) GetOrder(ctx context.Context, vendorID, orderID string) (*OrderDetail, error) {
	vo, err := uc.orderRepo.VendorOrder(ctx, orderID, vendorID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderRepo.ItemsByOrder(ctx, orderID, vendorID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{Order: *vo, Items: items}, nil
}

// UpdateFulfillmentInput represents input for a fulfillment update.
type UpdateFulfillmentInput struct {
	VendorID string
	OrderID  string
	Status   domain.FulfillmentStatus
}

// UpdateFulfillment moves an order to the next fulfillment status.
// Marking an order delivered opens an escrow entry for the vendor's
// share in the same database transaction.
func (uc *OrderUseCase) UpdateFulfillment(ctx context.Context, input UpdateFulfillmentInput) (*domain.VendorOrder, error) {
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatusTransition
	}

	vo, err := uc.orderRepo.VendorOrder(ctx, input.OrderID, input.VendorID)
	if err != nil {
		return nil, err
	}
	if !vo.Order.FulfillmentStatus.CanTransitionTo(input.Status) {
		return nil, domain.ErrInvalidStatusTransition
	}

	now := uc.now().UTC()
	var deliveredAt *time.Time
	if input.Status == domain.FulfillmentDelivered {
		deliveredAt = &now
	}

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.orderRepo.UpdateFulfillmentTx(ctx, tx, input.OrderID, input.Status, deliveredAt, now); err != nil {
			return err
		}

		if input.Status == domain.FulfillmentDelivered {
			entry := domain.NewEscrowEntry(uc.idGen.Generate(), input.VendorID, *vo, now, uc.returnWindow)
			if err := uc.escrowRepo.CreateTx(ctx, tx, &entry); err != nil {
				return err
			}
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	vo.Order.FulfillmentStatus = input.Status
	vo.Order.DeliveredAt = deliveredAt
	vo.Order.UpdatedAt = now

	return vo, nil
}
