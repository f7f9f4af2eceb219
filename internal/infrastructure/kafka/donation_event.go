package publisher

// DonationEvent is published on donation lifecycle changes: order created,
// reconciled to success, reconciled to failed.
type DonationEvent struct {
	OrderID      string  `json:"order_id"`
	CollectionID string  `json:"collection_id"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	DonorName    string  `json:"donor_name,omitempty"`
	Anonymous    bool    `json:"anonymous"`
	Trigger      string  `json:"trigger,omitempty"`
}
