package usecase

import (
	"context"
	"errors"

	"github.com/fundflow/collection-service/internal/domain"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
)

// VerifyPayment is the client-poll trigger: after the redirect flow returns
// the donor to the site, the client asks us to settle the order's fate.
func (uc *DefaultDonationUsecase) VerifyPayment(ctx context.Context, orderID string) (*donationdto.VerifyPaymentOutput, error) {
	donation, err := uc.DonationRepo.GetDonationByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	observed, err := uc.Gateway.QueryOrderStatus(ctx, orderID)
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordGatewayError("query_status")
		}
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			// No observation, no state change. The stored status is still
			// authoritative and the caller may retry.
			return &donationdto.VerifyPaymentOutput{
				OrderID:      orderID,
				Status:       donation.Status,
				Amount:       donation.Amount,
				CollectionID: donation.CollectionID,
				Verified:     false,
			}, nil
		}
		return nil, err
	}

	status, err := uc.Reconcile(ctx, orderID, observed, TriggerVerify)
	if err != nil {
		return nil, err
	}

	return &donationdto.VerifyPaymentOutput{
		OrderID:       orderID,
		Status:        status,
		GatewayStatus: observed,
		Amount:        donation.Amount,
		CollectionID:  donation.CollectionID,
		Verified:      true,
	}, nil
}
