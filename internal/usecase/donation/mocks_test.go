package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

// In-memory repositories reproducing the store's atomicity contract: the
// conditional transition and the increment are applied under one lock, the
// way the SQL implementation applies them in one transaction.

type MockCollectionRepo struct {
	mu          sync.Mutex
	Collections map[string]*domain.Collection
}

func NewMockCollectionRepo() *MockCollectionRepo {
	return &MockCollectionRepo{Collections: make(map[string]*domain.Collection)}
}

func (r *MockCollectionRepo) CreateCollection(_ context.Context, collection *domain.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *collection
	r.Collections[collection.ID] = &cp
	return nil
}

func (r *MockCollectionRepo) GetCollectionByID(_ context.Context, collectionID string) (*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	collection, ok := r.Collections[collectionID]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	cp := *collection
	return &cp, nil
}

func (r *MockCollectionRepo) ListCollections(_ context.Context, filters domain.CollectionFilters, skip, limit int) ([]*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Collection
	for _, collection := range r.Collections {
		if filters.Status != "" && string(collection.Status) != filters.Status {
			continue
		}
		if filters.Visibility != "" && string(collection.Visibility) != filters.Visibility {
			continue
		}
		if filters.Category != "" && collection.Category != filters.Category {
			continue
		}
		cp := *collection
		out = append(out, &cp)
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MockCollectionRepo) CountCollections(_ context.Context, status domain.CollectionStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, collection := range r.Collections {
		if collection.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *MockCollectionRepo) IncrementCollectionAmount(_ context.Context, inc domain.CollectionIncrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applyIncrementLocked(inc)
}

func (r *MockCollectionRepo) applyIncrementLocked(inc domain.CollectionIncrement) error {
	collection, ok := r.Collections[inc.CollectionID]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	collection.CurrentAmount += inc.AmountDelta
	collection.DonorCount += inc.DonorDelta
	return nil
}

func (r *MockCollectionRepo) ResetCollectionTotals(_ context.Context, collectionID string, currentAmount float64, donorCount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	collection, ok := r.Collections[collectionID]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	collection.CurrentAmount = currentAmount
	collection.DonorCount = donorCount
	return nil
}

type MockDonationRepo struct {
	mu          sync.Mutex
	Donations   map[string]*domain.Donation // keyed by order id
	Collections *MockCollectionRepo
}

func NewMockDonationRepo(collections *MockCollectionRepo) *MockDonationRepo {
	return &MockDonationRepo{
		Donations:   make(map[string]*domain.Donation),
		Collections: collections,
	}
}

func (r *MockDonationRepo) CreateDonation(_ context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *donation
	r.Donations[donation.OrderID] = &cp
	return nil
}

func (r *MockDonationRepo) GetDonationByOrderID(_ context.Context, orderID string) (*domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation, ok := r.Donations[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *donation
	return &cp, nil
}

func (r *MockDonationRepo) TransitionDonation(_ context.Context, orderID string, expected, newStatus domain.DonationStatus, increment *domain.CollectionIncrement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.Donations[orderID]
	if !ok {
		return false, domain.ErrOrderNotFound
	}
	if donation.Status != expected {
		return false, nil
	}
	donation.Status = newStatus
	donation.UpdatedAt = time.Now()

	if increment != nil {
		r.Collections.mu.Lock()
		err := r.Collections.applyIncrementLocked(*increment)
		r.Collections.mu.Unlock()
		if err != nil {
			// roll the transition back, as the SQL transaction would
			donation.Status = expected
			return false, err
		}
	}

	return true, nil
}

func (r *MockDonationRepo) SetGatewayPayment(_ context.Context, orderID, paymentID, paymentMethod string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation, ok := r.Donations[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	donation.GatewayInfo.PaymentID = paymentID
	donation.GatewayInfo.PaymentMethod = paymentMethod
	return nil
}

func (r *MockDonationRepo) ListDonations(_ context.Context, filters domain.DonationFilters, skip, limit int) ([]*domain.Donation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Donation
	for _, donation := range r.Donations {
		if filters.CollectionID != "" && donation.CollectionID != filters.CollectionID {
			continue
		}
		if len(filters.Statuses) > 0 {
			match := false
			for _, s := range filters.Statuses {
				if string(donation.Status) == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		cp := *donation
		out = append(out, &cp)
	}
	total := int64(len(out))
	if skip >= len(out) {
		return nil, total, nil
	}
	out = out[skip:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *MockDonationRepo) FindStuckPending(_ context.Context, olderThan time.Duration, limit int) ([]*domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-olderThan)
	var out []*domain.Donation
	for _, donation := range r.Donations {
		if donation.Status == domain.StatusPending && donation.CreatedAt.Before(cutoff) {
			cp := *donation
			out = append(out, &cp)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *MockDonationRepo) SumSuccessByCollection(_ context.Context, collectionID string) (float64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	var count int64
	for _, donation := range r.Donations {
		if donation.CollectionID == collectionID && donation.Status == domain.StatusSuccess {
			total += donation.Amount
			count++
		}
	}
	return total, count, nil
}

func (r *MockDonationRepo) CountByStatus(_ context.Context, status domain.DonationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, donation := range r.Donations {
		if donation.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *MockDonationRepo) SumSuccessAll(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, donation := range r.Donations {
		if donation.Status == domain.StatusSuccess {
			total += donation.Amount
		}
	}
	return total, nil
}

// StubGateway returns canned answers and counts calls.
type StubGateway struct {
	mu            sync.Mutex
	Status        domain.ExternalStatus
	StatusErr     error
	CreateErr     error
	QueryCalls    int
	CreatedOrders []domain.CreateGatewayOrderInput
}

func (g *StubGateway) CreateOrder(_ context.Context, input domain.CreateGatewayOrderInput) (*domain.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	g.CreatedOrders = append(g.CreatedOrders, input)
	return &domain.GatewayOrder{
		GatewayOrderID:   "cf_" + input.OrderID,
		PaymentSessionID: "session_" + input.OrderID,
		OrderStatus:      "ACTIVE",
	}, nil
}

func (g *StubGateway) QueryOrderStatus(_ context.Context, _ string) (domain.ExternalStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.QueryCalls++
	if g.StatusErr != nil {
		return domain.ExternalUnknown, g.StatusErr
	}
	return g.Status, nil
}

func newTestUsecase(donationRepo *MockDonationRepo, collectionRepo *MockCollectionRepo, gateway *StubGateway) *DefaultDonationUsecase {
	return NewDefaultDonationUsecase(
		donationRepo,
		collectionRepo,
		gateway,
		nil, // kafka
		nil, // audit log
		nil, // metrics
		"INR",
		"http://localhost:3000",
		"",
		ReconcilerSettings{PendingTimeout: 15 * time.Minute, BatchLimit: 100},
	)
}

func seedCollection(repo *MockCollectionRepo, id string, currentAmount float64, donorCount int64) *domain.Collection {
	collection := &domain.Collection{
		ID:            id,
		Title:         "Test Collection",
		Category:      "medical",
		GoalAmount:    10000,
		CurrentAmount: currentAmount,
		DonorCount:    donorCount,
		Visibility:    domain.VisibilityPublic,
		Status:        domain.CollectionActive,
		CreatedAt:     time.Now(),
	}
	repo.Collections[id] = collection
	return collection
}

func seedDonation(repo *MockDonationRepo, orderID, collectionID string, amount float64, status domain.DonationStatus) *domain.Donation {
	donation := &domain.Donation{
		ID:           "id-" + orderID,
		OrderID:      orderID,
		CollectionID: collectionID,
		Status:       status,
		Amount:       amount,
		DonorInfo:    domain.DonorInfo{Name: "Test Donor", Email: "donor@example.com", Phone: "9999999999"},
		CreatedAt:    time.Now(),
	}
	repo.Donations[orderID] = donation
	return donation
}
