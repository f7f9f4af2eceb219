package domain

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrCollectionClosed      = errors.New("collection is no longer accepting donations")
	ErrGatewayUnavailable    = errors.New("payment gateway unavailable")
	ErrGatewayRejected       = errors.New("payment gateway rejected the order")
	ErrPartialReconciliation = errors.New("donation transitioned without collection increment")
)
