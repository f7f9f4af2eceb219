package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// CreatePaymentOrder opens a hosted checkout session at the gateway and
// stores the donation in pending state. The donation only affects its
// collection once reconciliation later observes a terminal outcome.
func (uc *DefaultDonationUsecase) CreatePaymentOrder(ctx context.Context, input *donationdto.CreatePaymentOrderInput) (*donationdto.PaymentOrderOutput, error) {
	collection, err := uc.CollectionRepo.GetCollectionByID(ctx, input.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection.Status != domain.CollectionActive {
		return nil, domain.ErrCollectionClosed
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("donation amount must be positive")
	}

	idGenerator, err := nanoid.CustomASCII("0123456789abcdef", 12)
	if err != nil {
		return nil, err
	}
	orderID := "order_" + idGenerator()

	notifyBase := uc.NotifyBaseURL
	if notifyBase == "" {
		notifyBase = uc.ReturnBaseURL
	}

	gatewayOrder, err := uc.Gateway.CreateOrder(ctx, domain.CreateGatewayOrderInput{
		OrderID:  orderID,
		Amount:   input.Amount,
		Currency: uc.Currency,
		Customer: domain.DonorInfo{
			Name:  input.DonorName,
			Email: input.DonorEmail,
			Phone: input.DonorPhone,
		},
		ReturnURL: fmt.Sprintf("%s/payment/callback?order_id=%s", uc.ReturnBaseURL, orderID),
		NotifyURL: fmt.Sprintf("%s/api/webhooks/payment", notifyBase),
	})
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordGatewayError("create_order")
		}
		return nil, err
	}

	now := time.Now().UTC()
	donation := &domain.Donation{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		CollectionID: input.CollectionID,
		Status:       domain.StatusPending,
		DonorInfo: domain.DonorInfo{
			Name:  input.DonorName,
			Email: input.DonorEmail,
			Phone: input.DonorPhone,
		},
		Amount:    input.Amount,
		Message:   input.Message,
		Anonymous: input.Anonymous,
		GatewayInfo: domain.GatewayInfo{
			GatewayOrderID:   gatewayOrder.GatewayOrderID,
			PaymentSessionID: gatewayOrder.PaymentSessionID,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.DonationRepo.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordDonationCreated(collection.Category, uc.Currency, input.Amount)
	}
	uc.publishDonationEvent(donation, "create")

	return &donationdto.PaymentOrderOutput{
		OrderID:          orderID,
		GatewayOrderID:   gatewayOrder.GatewayOrderID,
		PaymentSessionID: gatewayOrder.PaymentSessionID,
		OrderStatus:      gatewayOrder.OrderStatus,
	}, nil
}
