package usecase

import (
	"context"

	"github.com/fundflow/collection-service/internal/domain"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
)

func (uc *DefaultDonationUsecase) GetDonationByOrderID(ctx context.Context, orderID string) (*domain.Donation, error) {
	return uc.DonationRepo.GetDonationByOrderID(ctx, orderID)
}

// ListCollectionDonations returns a collection's successful donations,
// newest first. Anonymous donors are masked before the result leaves the
// usecase.
func (uc *DefaultDonationUsecase) ListCollectionDonations(ctx context.Context, collectionID string, skip, limit int) (*donationdto.DonationListOutput, error) {
	if _, err := uc.CollectionRepo.GetCollectionByID(ctx, collectionID); err != nil {
		return nil, err
	}

	if limit < 1 || limit > 100 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	donations, total, err := uc.DonationRepo.ListDonations(ctx, domain.DonationFilters{
		CollectionID: collectionID,
		Statuses:     []string{string(domain.StatusSuccess)},
	}, skip, limit)
	if err != nil {
		return nil, err
	}

	for _, donation := range donations {
		if donation.Anonymous {
			donation.DonorInfo.Name = "Anonymous"
			donation.DonorInfo.Email = ""
			donation.DonorInfo.Phone = ""
		}
	}

	return &donationdto.DonationListOutput{
		Donations: donations,
		Total:     total,
	}, nil
}
