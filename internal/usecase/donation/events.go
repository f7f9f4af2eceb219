package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
	publisher "github.com/fundflow/collection-service/internal/infrastructure/kafka"
	"github.com/fundflow/collection-service/internal/infrastructure/logger"
)

// afterTransition handles the non-critical side of a winning transition:
// metrics, the audit trail, and the kafka event. Failures here are logged
// and never unwind the reconciliation.
func (uc *DefaultDonationUsecase) afterTransition(ctx context.Context, donation *domain.Donation, trigger string) {
	if uc.Metrics != nil {
		switch donation.Status {
		case domain.StatusSuccess:
			uc.Metrics.RecordDonationSucceeded(trigger, uc.Currency, donation.Amount)
		case domain.StatusFailed:
			uc.Metrics.RecordDonationFailed(trigger)
		}
	}

	if uc.EventLogger != nil {
		event := logger.DonationReconciledEvent{
			OrderID:      donation.OrderID,
			CollectionID: donation.CollectionID,
			OldStatus:    string(domain.StatusPending),
			NewStatus:    string(donation.Status),
			Trigger:      trigger,
			Amount:       donation.Amount,
			Currency:     uc.Currency,
			Timestamp:    time.Now(),
		}
		if err := uc.EventLogger.LogDonationReconciled(ctx, event); err != nil {
			slog.Error("failed to log donation reconciled event", "order_id", donation.OrderID, "error", err.Error())
		}

		if donation.Status == domain.StatusFailed {
			failed := logger.DonationFailedEvent{
				OrderID:      donation.OrderID,
				CollectionID: donation.CollectionID,
				Reason:       "payment " + string(donation.Status) + " at gateway",
				Trigger:      trigger,
				Amount:       donation.Amount,
				Timestamp:    time.Now(),
			}
			if err := uc.EventLogger.LogDonationFailed(ctx, failed); err != nil {
				slog.Error("failed to log donation failed event", "order_id", donation.OrderID, "error", err.Error())
			}
		}
	}

	uc.publishDonationEvent(donation, trigger)
}

func (uc *DefaultDonationUsecase) publishDonationEvent(donation *domain.Donation, trigger string) {
	if uc.Publisher == nil {
		return
	}

	donorName := donation.DonorInfo.Name
	if donation.Anonymous {
		donorName = "Anonymous"
	}

	go func(event publisher.DonationEvent) {
		if err := uc.Publisher.PublishDonation(event); err != nil {
			slog.Error("failed to publish kafka DonationEvent", "stage", event.Status, "error", err.Error())
		}
	}(publisher.DonationEvent{
		OrderID:      donation.OrderID,
		CollectionID: donation.CollectionID,
		Status:       string(donation.Status),
		Amount:       donation.Amount,
		Currency:     uc.Currency,
		DonorName:    donorName,
		Anonymous:    donation.Anonymous,
		Trigger:      trigger,
	})
}
