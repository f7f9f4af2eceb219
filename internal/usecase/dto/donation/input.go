package donationdto

type CreatePaymentOrderInput struct {
	CollectionID string
	DonorName    string
	DonorEmail   string
	DonorPhone   string
	Amount       float64
	Message      string
	Anonymous    bool
}

// WebhookInput is the gateway-independent view of an inbound webhook event.
type WebhookInput struct {
	OrderID        string
	EventType      string
	ObservedStatus string
	PaymentID      string
	PaymentMethod  string
}
