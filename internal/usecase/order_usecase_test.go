package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
	"github.com/oyedot/vendorhub/internal/usecase/mocks"
)

const testReturnWindow = 7 * 24 * time.Hour

func TestOrderUseCase_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderRepo.EXPECT().VendorOrder(gomock.Any(), "order-1", "vendor-1").Return(&domain.VendorOrder{
		Order:      domain.Order{ID: "order-1", Currency: "USD"},
		ItemsTotal: decimal.NewFromInt(120),
	}, nil)
	orderRepo.EXPECT().ItemsByOrder(gomock.Any(), "order-1", "vendor-1").Return([]domain.OrderItem{
		{ID: "item-1", OrderID: "order-1", VendorID: "vendor-1"},
		{ID: "item-2", OrderID: "order-1", VendorID: "vendor-1"},
	}, nil)

	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, passthroughRetrier(ctrl), testReturnWindow)

	detail, err := uc.GetOrder(context.Background(), "vendor-1", "order-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Order.Order.ID != "order-1" {
		t.Errorf("expected order-1, got %s", detail.Order.Order.ID)
	}
	if len(detail.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(detail.Items))
	}
}

func TestOrderUseCase_UpdateFulfillment_DeliveredOpensEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderRepo.EXPECT().VendorOrder(gomock.Any(), "order-1", "vendor-1").Return(&domain.VendorOrder{
		Order: domain.Order{
			ID:                "order-1",
			Currency:          "USD",
			FulfillmentStatus: domain.FulfillmentShipped,
		},
		ItemsTotal: decimal.NewFromInt(75),
	}, nil)

	tx := mocks.NewMockTransaction(ctrl)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	txManager := mocks.NewMockTransactionManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	orderRepo.EXPECT().UpdateFulfillmentTx(gomock.Any(), tx, "order-1", domain.FulfillmentDelivered, gomock.Any(), gomock.Any()).Return(nil)

	var created *domain.EscrowEntry
	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	escrowRepo.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx usecase.Transaction, entry *domain.EscrowEntry) error {
			created = entry
			return nil
		})

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("escrow-1")

	uc := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, passthroughRetrier(ctrl), testReturnWindow)

	vo, err := uc.UpdateFulfillment(context.Background(), usecase.UpdateFulfillmentInput{
		VendorID: "vendor-1",
		OrderID:  "order-1",
		Status:   domain.FulfillmentDelivered,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vo.Order.FulfillmentStatus != domain.FulfillmentDelivered {
		t.Errorf("expected delivered status, got %s", vo.Order.FulfillmentStatus)
	}
	if vo.Order.DeliveredAt == nil {
		t.Error("expected DeliveredAt to be set")
	}

	if created == nil {
		t.Fatal("expected an escrow entry to be created")
	}
	if created.ID != "escrow-1" {
		t.Errorf("expected escrow-1, got %s", created.ID)
	}
	if !created.Amount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected escrow amount 75, got %s", created.Amount)
	}
	if created.Status != domain.EscrowHeld {
		t.Errorf("expected held status, got %s", created.Status)
	}
	if got := created.ReleaseAt.Sub(created.HeldAt); got != testReturnWindow {
		t.Errorf("expected release after the return window, got %s", got)
	}
}

func TestOrderUseCase_UpdateFulfillment_ShippedSkipsEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderRepo.EXPECT().VendorOrder(gomock.Any(), "order-1", "vendor-1").Return(&domain.VendorOrder{
		Order: domain.Order{
			ID:                "order-1",
			FulfillmentStatus: domain.FulfillmentProcessing,
		},
	}, nil)

	tx := mocks.NewMockTransaction(ctrl)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	txManager := mocks.NewMockTransactionManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	orderRepo.EXPECT().UpdateFulfillmentTx(gomock.Any(), tx, "order-1", domain.FulfillmentShipped, nil, gomock.Any()).Return(nil)

	// No CreateTx expectation: only delivery opens escrow.
	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, passthroughRetrier(ctrl), testReturnWindow)

	vo, err := uc.UpdateFulfillment(context.Background(), usecase.UpdateFulfillmentInput{
		VendorID: "vendor-1",
		OrderID:  "order-1",
		Status:   domain.FulfillmentShipped,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vo.Order.DeliveredAt != nil {
		t.Error("expected DeliveredAt to stay unset")
	}
}

func TestOrderUseCase_UpdateFulfillment_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderRepo.EXPECT().VendorOrder(gomock.Any(), "order-1", "vendor-1").Return(&domain.VendorOrder{
		Order: domain.Order{
			ID:                "order-1",
			FulfillmentStatus: domain.FulfillmentDelivered,
		},
	}, nil)

	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, passthroughRetrier(ctrl), testReturnWindow)

	_, err := uc.UpdateFulfillment(context.Background(), usecase.UpdateFulfillmentInput{
		VendorID: "vendor-1",
		OrderID:  "order-1",
		Status:   domain.FulfillmentShipped,
	})

	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestOrderUseCase_UpdateFulfillment_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, passthroughRetrier(ctrl), testReturnWindow)

	_, err := uc.UpdateFulfillment(context.Background(), usecase.UpdateFulfillmentInput{
		VendorID: "vendor-1",
		OrderID:  "order-1",
		Status:   domain.FulfillmentStatus("teleported"),
	})

	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}
