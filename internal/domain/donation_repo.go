package domain

import (
	"context"
	"time"
)

type DonationFilters struct {
	CollectionID string
	Statuses     []string
	DateFrom     time.Time
	DateTo       time.Time
}

type DonationRepository interface {
	CreateDonation(ctx context.Context, donation *Donation) error
	GetDonationByOrderID(ctx context.Context, orderID string) (*Donation, error)

	// TransitionDonation sets the donation status to newStatus only if the
	// stored status still equals expected, as a single conditional UPDATE.
	// When the transition applies and increment is non-nil, the matching
	// collection increment runs in the same transaction.
	// Returns whether the conditional update applied.
	TransitionDonation(ctx context.Context, orderID string, expected, newStatus DonationStatus, increment *CollectionIncrement) (bool, error)

	SetGatewayPayment(ctx context.Context, orderID, paymentID, paymentMethod string) error

	ListDonations(ctx context.Context, filters DonationFilters, skip, limit int) ([]*Donation, int64, error)
	FindStuckPending(ctx context.Context, olderThan time.Duration, limit int) ([]*Donation, error)
	SumSuccessByCollection(ctx context.Context, collectionID string) (total float64, count int64, err error)
	CountByStatus(ctx context.Context, status DonationStatus) (int64, error)
	SumSuccessAll(ctx context.Context) (float64, error)
}

// CollectionIncrement is the balance update applied when a donation
// reconciles to success.
type CollectionIncrement struct {
	CollectionID string
	AmountDelta  float64
	DonorDelta   int64
}
