package usecase

import (
	"context"
	"testing"

	"github.com/fundflow/collection-service/internal/domain"
	collectiondto "github.com/fundflow/collection-service/internal/usecase/dto/collection"
)

type fakeCollectionRepo struct {
	collections map[string]*domain.Collection
	lastFilters domain.CollectionFilters
	lastSkip    int
	lastLimit   int
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{collections: make(map[string]*domain.Collection)}
}

func (r *fakeCollectionRepo) CreateCollection(_ context.Context, collection *domain.Collection) error {
	r.collections[collection.ID] = collection
	return nil
}

func (r *fakeCollectionRepo) GetCollectionByID(_ context.Context, collectionID string) (*domain.Collection, error) {
	collection, ok := r.collections[collectionID]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	return collection, nil
}

func (r *fakeCollectionRepo) ListCollections(_ context.Context, filters domain.CollectionFilters, skip, limit int) ([]*domain.Collection, error) {
	r.lastFilters = filters
	r.lastSkip = skip
	r.lastLimit = limit
	var out []*domain.Collection
	for _, collection := range r.collections {
		if filters.Status != "" && string(collection.Status) != filters.Status {
			continue
		}
		if filters.Visibility != "" && string(collection.Visibility) != filters.Visibility {
			continue
		}
		out = append(out, collection)
	}
	return out, nil
}

func (r *fakeCollectionRepo) CountCollections(_ context.Context, status domain.CollectionStatus) (int64, error) {
	var n int64
	for _, collection := range r.collections {
		if collection.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) IncrementCollectionAmount(_ context.Context, inc domain.CollectionIncrement) error {
	collection, ok := r.collections[inc.CollectionID]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	collection.CurrentAmount += inc.AmountDelta
	collection.DonorCount += inc.DonorDelta
	return nil
}

func (r *fakeCollectionRepo) ResetCollectionTotals(_ context.Context, collectionID string, currentAmount float64, donorCount int64) error {
	collection, ok := r.collections[collectionID]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	collection.CurrentAmount = currentAmount
	collection.DonorCount = donorCount
	return nil
}

// fakeDonationStats only answers the aggregate queries the collection
// usecase needs.
type fakeDonationStats struct {
	domain.DonationRepository
	successCount int64
	successTotal float64
}

func (r *fakeDonationStats) CountByStatus(_ context.Context, status domain.DonationStatus) (int64, error) {
	if status == domain.StatusSuccess {
		return r.successCount, nil
	}
	return 0, nil
}

func (r *fakeDonationStats) SumSuccessAll(_ context.Context) (float64, error) {
	return r.successTotal, nil
}

func TestCreateCollection_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCollectionRepo()
	uc := NewDefaultCollectionUsecase(repo, &fakeDonationStats{})

	collection, err := uc.CreateCollection(ctx, &collectiondto.CreateCollectionInput{
		Title:         "Diwali Office Party",
		Category:      "festival",
		GoalAmount:    5000,
		OrganizerName: "Priya",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if collection.ID == "" {
		t.Error("expected generated collection id")
	}
	if collection.Status != domain.CollectionActive {
		t.Errorf("status = %s, want active", collection.Status)
	}
	if collection.Visibility != domain.VisibilityPublic {
		t.Errorf("visibility = %s, want public default", collection.Visibility)
	}
	if collection.CoverImage != CategoryImage("festival") {
		t.Errorf("cover image = %q, want festival category image", collection.CoverImage)
	}
	if collection.ShareLink != "/collection/"+collection.ID {
		t.Errorf("share link = %q, want /collection/%s", collection.ShareLink, collection.ID)
	}
	if collection.CurrentAmount != 0 || collection.DonorCount != 0 {
		t.Errorf("new collection totals = %v/%v, want zero", collection.CurrentAmount, collection.DonorCount)
	}

	if _, err := uc.GetCollectionByID(ctx, collection.ID); err != nil {
		t.Errorf("created collection not retrievable: %v", err)
	}
}

func TestCreateCollection_ExplicitValuesKept(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCollectionRepo()
	uc := NewDefaultCollectionUsecase(repo, &fakeDonationStats{})

	collection, err := uc.CreateCollection(ctx, &collectiondto.CreateCollectionInput{
		Title:      "Private Farewell",
		Category:   "office",
		GoalAmount: 2000,
		Visibility: string(domain.VisibilityPrivate),
		CoverImage: "https://example.com/custom.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if collection.Visibility != domain.VisibilityPrivate {
		t.Errorf("visibility = %s, want private", collection.Visibility)
	}
	if collection.CoverImage != "https://example.com/custom.jpg" {
		t.Errorf("cover image = %q, want custom url kept", collection.CoverImage)
	}
}

func TestCategoryImage_FallsBackForUnknownCategory(t *testing.T) {
	if CategoryImage("medical") == "" {
		t.Error("known category should have an image")
	}
	if CategoryImage("unknown-category") != fallbackCoverImage {
		t.Error("unknown category should use the fallback image")
	}
}

func TestListCollections_DefaultsToPublicActive(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCollectionRepo()
	uc := NewDefaultCollectionUsecase(repo, &fakeDonationStats{})

	if _, err := uc.ListCollections(ctx, &collectiondto.ListCollectionsInput{Skip: -5, Limit: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilters.Visibility != string(domain.VisibilityPublic) {
		t.Errorf("visibility filter = %q, want public", repo.lastFilters.Visibility)
	}
	if repo.lastFilters.Status != string(domain.CollectionActive) {
		t.Errorf("status filter = %q, want active", repo.lastFilters.Status)
	}
	if repo.lastSkip != 0 {
		t.Errorf("skip = %d, want clamped to 0", repo.lastSkip)
	}
	if repo.lastLimit != 20 {
		t.Errorf("limit = %d, want default 20", repo.lastLimit)
	}
}

func TestGetPlatformStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCollectionRepo()
	repo.collections["c1"] = &domain.Collection{ID: "c1", Status: domain.CollectionActive}
	repo.collections["c2"] = &domain.Collection{ID: "c2", Status: domain.CollectionActive}
	repo.collections["c3"] = &domain.Collection{ID: "c3", Status: domain.CollectionCompleted}

	uc := NewDefaultCollectionUsecase(repo, &fakeDonationStats{successCount: 7, successTotal: 4200})

	stats, err := uc.GetPlatformStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCollections != 2 {
		t.Errorf("total collections = %d, want 2", stats.TotalCollections)
	}
	if stats.TotalDonations != 7 {
		t.Errorf("total donations = %d, want 7", stats.TotalDonations)
	}
	if stats.TotalRaised != 4200 {
		t.Errorf("total raised = %v, want 4200", stats.TotalRaised)
	}
}
