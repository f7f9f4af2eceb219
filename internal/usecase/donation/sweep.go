package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fundflow/collection-service/internal/domain"
)

// ReconcileStuckPending is the fallback trigger: it resolves donations that
// stayed pending past the timeout because neither the client poll nor the
// webhook ever arrived.
func (uc *DefaultDonationUsecase) ReconcileStuckPending(ctx context.Context) error {
	donations, err := uc.DonationRepo.FindStuckPending(ctx, uc.Reconciler.PendingTimeout, uc.Reconciler.BatchLimit)
	if err != nil {
		return err
	}

	for _, donation := range donations {
		observed, err := uc.Gateway.QueryOrderStatus(ctx, donation.OrderID)
		if err != nil {
			if uc.Metrics != nil {
				uc.Metrics.RecordGatewayError("query_status")
			}
			if errors.Is(err, domain.ErrGatewayUnavailable) {
				// Transient; the next tick picks the order up again.
				continue
			}
			slog.Error("stuck order status query failed", "order_id", donation.OrderID, "error", err.Error())
			continue
		}

		status, err := uc.Reconcile(ctx, donation.OrderID, observed, TriggerPoller)
		if err != nil {
			slog.Error("stuck order reconcile failed", "order_id", donation.OrderID, "error", err.Error())
			continue
		}

		if status != domain.StatusPending {
			slog.Info("stuck order resolved", "order_id", donation.OrderID, "status", string(status))
		}
	}

	return nil
}

// RepairCollectionTotals is the consistency sweep: each collection's running
// totals must equal the aggregate of its success donations. Drift means a
// reconciliation was interrupted between its two writes (or the totals were
// mutated out of band); the sweep overwrites the totals from the donations,
// which are the source of truth.
func (uc *DefaultDonationUsecase) RepairCollectionTotals(ctx context.Context) error {
	const pageSize = 200

	for skip := 0; ; skip += pageSize {
		collections, err := uc.CollectionRepo.ListCollections(ctx, domain.CollectionFilters{}, skip, pageSize)
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			return nil
		}

		for _, collection := range collections {
			total, count, err := uc.DonationRepo.SumSuccessByCollection(ctx, collection.ID)
			if err != nil {
				return err
			}

			if collection.CurrentAmount == total && collection.DonorCount == count {
				continue
			}

			slog.Warn("collection totals drifted from successful donations",
				"collection_id", collection.ID,
				"stored_amount", collection.CurrentAmount,
				"actual_amount", total,
				"stored_donors", collection.DonorCount,
				"actual_donors", count,
				"cause", domain.ErrPartialReconciliation.Error(),
			)

			if err := uc.CollectionRepo.ResetCollectionTotals(ctx, collection.ID, total, count); err != nil {
				return err
			}
			if uc.Metrics != nil {
				uc.Metrics.SweepDriftRepairedTotal.Inc()
			}
		}

		if len(collections) < pageSize {
			return nil
		}
	}
}
