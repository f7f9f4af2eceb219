package domain

import "context"

type CollectionFilters struct {
	Visibility string
	Category   string
	Status     string
}

type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection *Collection) error
	GetCollectionByID(ctx context.Context, collectionID string) (*Collection, error)
	ListCollections(ctx context.Context, filters CollectionFilters, skip, limit int) ([]*Collection, error)
	CountCollections(ctx context.Context, status CollectionStatus) (int64, error)

	// IncrementCollectionAmount applies amount and donor-count deltas as a
	// single atomic UPDATE.
	IncrementCollectionAmount(ctx context.Context, inc CollectionIncrement) error

	// ResetCollectionTotals overwrites the running totals. Used only by the
	// consistency sweep when repairing drift.
	ResetCollectionTotals(ctx context.Context, collectionID string, currentAmount float64, donorCount int64) error
}
