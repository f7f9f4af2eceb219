package domain

import "context"

// CreateGatewayOrderInput mirrors the fields the gateway needs to open a
// hosted checkout session.
type CreateGatewayOrderInput struct {
	OrderID   string
	Amount    float64
	Currency  string
	Customer  DonorInfo
	ReturnURL string
	NotifyURL string
}

type GatewayOrder struct {
	GatewayOrderID   string
	PaymentSessionID string
	OrderStatus      string
}

// PaymentGateway is the outbound port to the payment processor.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, input CreateGatewayOrderInput) (*GatewayOrder, error)
	QueryOrderStatus(ctx context.Context, orderID string) (ExternalStatus, error)
}
