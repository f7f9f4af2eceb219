package usecase

import (
	"context"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
	collectiondto "github.com/fundflow/collection-service/internal/usecase/dto/collection"
	"github.com/google/uuid"
)

type CollectionUsecase interface {
	CreateCollection(ctx context.Context, input *collectiondto.CreateCollectionInput) (*domain.Collection, error)
	GetCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error)
	ListCollections(ctx context.Context, input *collectiondto.ListCollectionsInput) ([]*domain.Collection, error)
	GetPlatformStats(ctx context.Context) (*collectiondto.PlatformStats, error)
}

type DefaultCollectionUsecase struct {
	CollectionRepo domain.CollectionRepository
	DonationRepo   domain.DonationRepository
}

func NewDefaultCollectionUsecase(
	collectionRepo domain.CollectionRepository,
	donationRepo domain.DonationRepository) *DefaultCollectionUsecase {

	return &DefaultCollectionUsecase{
		CollectionRepo: collectionRepo,
		DonationRepo:   donationRepo,
	}
}

var categoryImages = map[string]string{
	"celebration": "https://images.unsplash.com/photo-1758272133831-510256416378",
	"medical":     "https://images.unsplash.com/photo-1581056771107-24ca5f033842",
	"festival":    "https://images.unsplash.com/photo-1599807502285-4b218782d601",
	"society":     "https://images.unsplash.com/photo-1556761175-5973dc0f32e7",
	"social":      "https://images.unsplash.com/photo-1708593343700-a101f8fe4d11",
	"office":      "https://images.unsplash.com/photo-1758691737182-d42aefd6dee8",
}

const fallbackCoverImage = "https://images.unsplash.com/photo-1556761175-5973dc0f32e7"

func CategoryImage(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return fallbackCoverImage
}

func (uc *DefaultCollectionUsecase) CreateCollection(ctx context.Context, input *collectiondto.CreateCollectionInput) (*domain.Collection, error) {
	collectionID := uuid.NewString()
	now := time.Now().UTC()

	visibility := domain.CollectionVisibility(input.Visibility)
	if visibility != domain.VisibilityPrivate {
		visibility = domain.VisibilityPublic
	}

	coverImage := input.CoverImage
	if coverImage == "" {
		coverImage = CategoryImage(input.Category)
	}

	collection := &domain.Collection{
		ID:          collectionID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		GoalAmount:  input.GoalAmount,
		Visibility:  visibility,
		Status:      domain.CollectionActive,
		Deadline:    input.Deadline,
		CoverImage:  coverImage,
		OrganizerInfo: domain.OrganizerInfo{
			Name:  input.OrganizerName,
			Email: input.OrganizerEmail,
			Phone: input.OrganizerPhone,
		},
		ShareLink: "/collection/" + collectionID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.CollectionRepo.CreateCollection(ctx, collection); err != nil {
		return nil, err
	}

	return collection, nil
}

func (uc *DefaultCollectionUsecase) GetCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error) {
	return uc.CollectionRepo.GetCollectionByID(ctx, collectionID)
}

func (uc *DefaultCollectionUsecase) ListCollections(ctx context.Context, input *collectiondto.ListCollectionsInput) ([]*domain.Collection, error) {
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Skip < 0 {
		input.Skip = 0
	}

	// Only public collections are listed unless the caller asks otherwise.
	visibility := input.Visibility
	if visibility == "" {
		visibility = string(domain.VisibilityPublic)
	}

	filters := domain.CollectionFilters{
		Status:     string(domain.CollectionActive),
		Visibility: visibility,
		Category:   input.Category,
	}

	return uc.CollectionRepo.ListCollections(ctx, filters, input.Skip, input.Limit)
}

func (uc *DefaultCollectionUsecase) GetPlatformStats(ctx context.Context) (*collectiondto.PlatformStats, error) {
	totalCollections, err := uc.CollectionRepo.CountCollections(ctx, domain.CollectionActive)
	if err != nil {
		return nil, err
	}

	totalDonations, err := uc.DonationRepo.CountByStatus(ctx, domain.StatusSuccess)
	if err != nil {
		return nil, err
	}

	totalRaised, err := uc.DonationRepo.SumSuccessAll(ctx)
	if err != nil {
		return nil, err
	}

	return &collectiondto.PlatformStats{
		TotalCollections: totalCollections,
		TotalDonations:   totalDonations,
		TotalRaised:      totalRaised,
	}, nil
}
