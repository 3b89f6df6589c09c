package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/infrastructure/metrics"
)

// EscrowUseCase handles held-funds views and release processing.
type EscrowUseCase struct {
	escrowRepo EscrowRepository
	now        func() time.Time
}

// NewEscrowUseCase creates a new EscrowUseCase.
func NewEscrowUseCase(escrowRepo EscrowRepository) *EscrowUseCase {
	return &EscrowUseCase{
		escrowRepo: escrowRepo,
		now:        time.Now,
	}
}

// ListEntries lists the vendor's escrow entries, optionally filtered by
// status. An empty status lists everything.
func (uc *EscrowUseCase) ListEntries(ctx context.Context, vendorID string, status domain.EscrowStatus) ([]domain.EscrowEntry, error) {
	return uc.escrowRepo.ListByVendor(ctx, vendorID, status)
}

// Summary aggregates the vendor's escrow position.
func (uc *EscrowUseCase) Summary(ctx context.Context, vendorID string) (*domain.EscrowSummary, error) {
	entries, err := uc.escrowRepo.ListByVendor(ctx, vendorID, "")
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeEscrow(entries)
	return &summary, nil
}

// ReleaseDue releases every held entry whose return window has expired
// and returns the number released. Individual release failures are
// logged and skipped so one bad row does not block the batch.
func (uc *EscrowUseCase) ReleaseDue(ctx context.Context) (int, error) {
	now := uc.now().UTC()

	due, err := uc.escrowRepo.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, entry := range due {
		if !entry.DueForRelease(now) {
			continue
		}
		if err := uc.escrowRepo.MarkReleased(ctx, entry.ID, now); err != nil {
			slog.Warn("escrow release failed", "entry_id", entry.ID, "error", err)
			continue
		}
		released++
		metrics.EscrowReleased.Inc()
	}

	return released, nil
}
