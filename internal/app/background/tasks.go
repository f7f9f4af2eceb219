package background

import (
	"context"
	"log/slog"
	"time"

	usecase "github.com/fundflow/collection-service/internal/usecase/donation"
)

// Tasks owns the periodic reconciliation work: the stuck-pending poller and
// the collection totals consistency sweep.
type Tasks struct {
	DonationUsecase usecase.DonationUsecase
	PollInterval    time.Duration
	SweepInterval   time.Duration
}

func NewTasks(donationUsecase usecase.DonationUsecase, pollInterval, sweepInterval time.Duration) *Tasks {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Minute
	}

	return &Tasks{
		DonationUsecase: donationUsecase,
		PollInterval:    pollInterval,
		SweepInterval:   sweepInterval,
	}
}

func (t *Tasks) StartStuckPendingPoller(ctx context.Context) {
	ticker := time.NewTicker(t.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.DonationUsecase.ReconcileStuckPending(ctx); err != nil {
				slog.Error("stuck-pending poll failed", "error", err.Error())
			}
		}
	}
}

func (t *Tasks) StartConsistencySweep(ctx context.Context) {
	ticker := time.NewTicker(t.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.DonationUsecase.RepairCollectionTotals(ctx); err != nil {
				slog.Error("consistency sweep failed", "error", err.Error())
			}
		}
	}
}
