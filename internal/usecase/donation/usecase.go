package usecase

import (
	"context"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
	publisher "github.com/fundflow/collection-service/internal/infrastructure/kafka"
	"github.com/fundflow/collection-service/internal/infrastructure/logger"
	"github.com/fundflow/collection-service/internal/infrastructure/metrics"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
)

// Reconciliation triggers. The same engine serves all three; correctness
// never depends on which one fires first.
const (
	TriggerVerify  = "verify"
	TriggerWebhook = "webhook"
	TriggerPoller  = "poller"
)

type DonationUsecase interface {
	CreatePaymentOrder(ctx context.Context, input *donationdto.CreatePaymentOrderInput) (*donationdto.PaymentOrderOutput, error)
	VerifyPayment(ctx context.Context, orderID string) (*donationdto.VerifyPaymentOutput, error)
	ProcessWebhookEvent(ctx context.Context, input *donationdto.WebhookInput) error
	Reconcile(ctx context.Context, orderID string, observed domain.ExternalStatus, trigger string) (domain.DonationStatus, error)

	ListCollectionDonations(ctx context.Context, collectionID string, skip, limit int) (*donationdto.DonationListOutput, error)
	GetDonationByOrderID(ctx context.Context, orderID string) (*domain.Donation, error)

	ReconcileStuckPending(ctx context.Context) error
	RepairCollectionTotals(ctx context.Context) error
}

// EventPublisher is the slice of the kafka publisher the usecase needs.
type EventPublisher interface {
	PublishDonation(event publisher.DonationEvent) error
}

type ReconcilerSettings struct {
	PendingTimeout time.Duration
	BatchLimit     int
}

type DefaultDonationUsecase struct {
	DonationRepo   domain.DonationRepository
	CollectionRepo domain.CollectionRepository
	Gateway        domain.PaymentGateway
	Publisher      EventPublisher
	EventLogger    logger.DonationEventLogger
	Metrics        *metrics.DonationMetrics

	Currency      string
	ReturnBaseURL string
	NotifyBaseURL string
	Reconciler    ReconcilerSettings
}

func NewDefaultDonationUsecase(
	donationRepo domain.DonationRepository,
	collectionRepo domain.CollectionRepository,
	gateway domain.PaymentGateway,
	eventPublisher EventPublisher,
	eventLogger logger.DonationEventLogger,
	donationMetrics *metrics.DonationMetrics,
	currency, returnBaseURL, notifyBaseURL string,
	reconciler ReconcilerSettings) *DefaultDonationUsecase {

	if reconciler.BatchLimit <= 0 {
		reconciler.BatchLimit = 100
	}
	if reconciler.PendingTimeout <= 0 {
		reconciler.PendingTimeout = 15 * time.Minute
	}

	return &DefaultDonationUsecase{
		DonationRepo:   donationRepo,
		CollectionRepo: collectionRepo,
		Gateway:        gateway,
		Publisher:      eventPublisher,
		EventLogger:    eventLogger,
		Metrics:        donationMetrics,
		Currency:       currency,
		ReturnBaseURL:  returnBaseURL,
		NotifyBaseURL:  notifyBaseURL,
		Reconciler:     reconciler,
	}
}
