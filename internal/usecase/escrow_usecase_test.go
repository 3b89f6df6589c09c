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

func TestEscrowUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	escrowRepo.EXPECT().ListByVendor(gomock.Any(), "vendor-1", domain.EscrowStatus("")).
		Return([]domain.EscrowEntry{
			{ID: "e1", Status: domain.EscrowHeld, Amount: decimal.NewFromInt(30)},
			{ID: "e2", Status: domain.EscrowHeld, Amount: decimal.NewFromInt(20)},
			{ID: "e3", Status: domain.EscrowReleased, Amount: decimal.NewFromInt(50)},
		}, nil)

	uc := usecase.NewEscrowUseCase(escrowRepo)

	summary, err := uc.Summary(context.Background(), "vendor-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.HeldTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected held total 50, got %s", summary.HeldTotal)
	}
	if summary.HeldCount != 2 {
		t.Errorf("expected 2 held entries, got %d", summary.HeldCount)
	}
	if !summary.ReleasedTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected released total 50, got %s", summary.ReleasedTotal)
	}
	if summary.ReleasedCount != 1 {
		t.Errorf("expected 1 released entry, got %d", summary.ReleasedCount)
	}
}

func TestEscrowUseCase_ReleaseDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	past := time.Now().UTC().Add(-time.Hour)

	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	escrowRepo.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return([]domain.EscrowEntry{
		{ID: "e1", Status: domain.EscrowHeld, ReleaseAt: past},
		{ID: "e2", Status: domain.EscrowHeld, ReleaseAt: past},
	}, nil)
	escrowRepo.EXPECT().MarkReleased(gomock.Any(), "e1", gomock.Any()).Return(nil)
	escrowRepo.EXPECT().MarkReleased(gomock.Any(), "e2", gomock.Any()).Return(nil)

	uc := usecase.NewEscrowUseCase(escrowRepo)

	released, err := uc.ReleaseDue(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if released != 2 {
		t.Errorf("expected 2 released, got %d", released)
	}
}

func TestEscrowUseCase_ReleaseDue_SkipsFailedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	past := time.Now().UTC().Add(-time.Hour)

	escrowRepo := mocks.NewMockEscrowRepository(ctrl)
	escrowRepo.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return([]domain.EscrowEntry{
		{ID: "e1", Status: domain.EscrowHeld, ReleaseAt: past},
		{ID: "e2", Status: domain.EscrowHeld, ReleaseAt: past},
	}, nil)
	escrowRepo.EXPECT().MarkReleased(gomock.Any(), "e1", gomock.Any()).Return(errors.New("row locked"))
	escrowRepo.EXPECT().MarkReleased(gomock.Any(), "e2", gomock.Any()).Return(nil)

	uc := usecase.NewEscrowUseCase(escrowRepo)

	released, err := uc.ReleaseDue(context.Background())

	if err != nil {
		t.Fatalf("expected batch to continue, got error: %v", err)
	}

	if released != 1 {
		t.Errorf("expected 1 released, got %d", released)
	}
}
