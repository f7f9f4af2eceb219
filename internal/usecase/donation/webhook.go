package usecase

import (
	"context"
	"log/slog"

	"github.com/fundflow/collection-service/internal/domain"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
)

// ProcessWebhookEvent is the asynchronous trigger. Delivery is
// at-least-once, so the same event may arrive repeatedly; the conditional
// transition inside Reconcile makes redelivery harmless.
func (uc *DefaultDonationUsecase) ProcessWebhookEvent(ctx context.Context, input *donationdto.WebhookInput) error {
	observed := domain.ExternalStatus(input.ObservedStatus)

	status, err := uc.Reconcile(ctx, input.OrderID, observed, TriggerWebhook)
	if err != nil {
		return err
	}

	// Gateway payment metadata only exists on success events. Writing it is
	// idempotent, so redelivered events just rewrite the same values.
	if observed == domain.ExternalPaid && input.PaymentID != "" {
		if err := uc.DonationRepo.SetGatewayPayment(ctx, input.OrderID, input.PaymentID, input.PaymentMethod); err != nil {
			slog.Error("failed to store gateway payment metadata", "order_id", input.OrderID, "error", err.Error())
		}
	}

	slog.Info("payment webhook processed", "order_id", input.OrderID, "event_type", input.EventType, "status", string(status))

	return nil
}
