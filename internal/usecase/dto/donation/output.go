package donationdto

import "github.com/fundflow/collection-service/internal/domain"

type PaymentOrderOutput struct {
	OrderID          string
	GatewayOrderID   string
	PaymentSessionID string
	OrderStatus      string
}

type VerifyPaymentOutput struct {
	OrderID       string
	Status        domain.DonationStatus
	GatewayStatus domain.ExternalStatus
	Amount        float64
	CollectionID  string
	// Verified is false when the gateway could not be reached and the
	// stored status is returned as-is.
	Verified bool
}

type DonationListOutput struct {
	Donations []*domain.Donation
	Total     int64
}
