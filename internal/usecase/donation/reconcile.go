package usecase

import (
	"context"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

// Reconcile applies an externally observed payment status to a donation.
//
// The transition itself is a single conditional UPDATE guarded by
// "status = pending", so any number of concurrent calls for the same order
// agree on one winner; the collection increment rides in the same database
// transaction as the winning transition. Every path that performs no write
// returns the currently stored status.
func (uc *DefaultDonationUsecase) Reconcile(ctx context.Context, orderID string, observed domain.ExternalStatus, trigger string) (domain.DonationStatus, error) {
	start := time.Now()
	defer func() {
		if uc.Metrics != nil {
			uc.Metrics.ReconcileDuration.WithLabelValues(trigger).Observe(time.Since(start).Seconds())
		}
	}()

	donation, err := uc.DonationRepo.GetDonationByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}

	var target domain.DonationStatus
	switch observed {
	case domain.ExternalPaid:
		target = domain.StatusSuccess
	case domain.ExternalExpired, domain.ExternalCancelled:
		target = domain.StatusFailed
	default:
		// ACTIVE, UNKNOWN: nothing to conclude yet.
		return donation.Status, nil
	}

	var increment *domain.CollectionIncrement
	if target == domain.StatusSuccess {
		increment = &domain.CollectionIncrement{
			CollectionID: donation.CollectionID,
			AmountDelta:  donation.Amount,
			DonorDelta:   1,
		}
	}

	applied, err := uc.DonationRepo.TransitionDonation(ctx, orderID, domain.StatusPending, target, increment)
	if err != nil {
		return "", err
	}

	if !applied {
		// Lost the race or the donation was already terminal. Report what
		// is stored now; no collection mutation happened on this call.
		if uc.Metrics != nil {
			uc.Metrics.RecordReconcileNoop(trigger)
			if trigger == TriggerWebhook {
				uc.Metrics.WebhookDuplicatesTotal.Inc()
			}
		}

		current, err := uc.DonationRepo.GetDonationByOrderID(ctx, orderID)
		if err != nil {
			return "", err
		}
		return current.Status, nil
	}

	donation.Status = target
	uc.afterTransition(ctx, donation, trigger)

	return target, nil
}
