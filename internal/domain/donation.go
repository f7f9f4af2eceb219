package domain

import "time"

type DonationStatus string

const (
	StatusPending  DonationStatus = "pending"
	StatusSuccess  DonationStatus = "success"
	StatusFailed   DonationStatus = "failed"
	StatusRefunded DonationStatus = "refunded"
)

// IsTerminal reports whether no further transition is permitted.
func (s DonationStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusRefunded
}

// ExternalStatus is an order status as observed at the payment gateway.
type ExternalStatus string

const (
	ExternalPaid      ExternalStatus = "PAID"
	ExternalExpired   ExternalStatus = "EXPIRED"
	ExternalCancelled ExternalStatus = "CANCELLED"
	ExternalActive    ExternalStatus = "ACTIVE"
	ExternalUnknown   ExternalStatus = "UNKNOWN"
)

type Donation struct {
	ID           string
	OrderID      string
	CollectionID string
	Status       DonationStatus
	DonorInfo    DonorInfo
	Amount       float64
	Message      string
	Anonymous    bool
	GatewayInfo  GatewayInfo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DonorInfo struct {
	Name  string
	Email string
	Phone string
}

// GatewayInfo holds identifiers assigned by the payment gateway.
type GatewayInfo struct {
	GatewayOrderID   string
	PaymentSessionID string
	PaymentID        string
	PaymentMethod    string
}
