package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundflow/collection-service/internal/domain"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/mappers"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDonationRepository struct {
	DB *gorm.DB
}

func NewDefaultDonationRepository(db *gorm.DB) *DefaultDonationRepository {
	return &DefaultDonationRepository{DB: db}
}

func (r *DefaultDonationRepository) CreateDonation(ctx context.Context, donation *domain.Donation) error {
	donationModel := mappers.ToGORMDonation(donation)
	if err := r.DB.WithContext(ctx).Create(donationModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultDonationRepository) GetDonationByOrderID(ctx context.Context, orderID string) (*domain.Donation, error) {
	var donation models.DonationModel
	if err := r.DB.WithContext(ctx).First(&donation, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDonation(&donation), nil
}

// TransitionDonation performs the race-safe status transition. The status
// check and the write are one UPDATE statement, so two concurrent callers
// can never both observe "pending": the database serializes the row update
// and exactly one caller sees RowsAffected == 1. The collection increment
// runs in the same transaction, so a donation is never left transitioned
// without its increment.
func (r *DefaultDonationRepository) TransitionDonation(
	ctx context.Context,
	orderID string,
	expected, newStatus domain.DonationStatus,
	increment *domain.CollectionIncrement,
) (bool, error) {
	applied := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.DonationModel{}).
			Where("order_id = ? AND status = ?", orderID, expected).
			Updates(map[string]interface{}{
				"status":     newStatus,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Already reconciled by a concurrent trigger.
			return nil
		}
		applied = true

		if increment == nil {
			return nil
		}

		incRes := tx.Model(&models.CollectionModel{}).
			Where("id = ?", increment.CollectionID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", increment.AmountDelta),
				"donor_count":    gorm.Expr("donor_count + ?", increment.DonorDelta),
				"updated_at":     time.Now(),
			})
		if incRes.Error != nil {
			return incRes.Error
		}
		if incRes.RowsAffected == 0 {
			return fmt.Errorf("%w: collection %s", domain.ErrCollectionNotFound, increment.CollectionID)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

func (r *DefaultDonationRepository) SetGatewayPayment(ctx context.Context, orderID, paymentID, paymentMethod string) error {
	return r.DB.WithContext(ctx).Model(&models.DonationModel{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"gateway_payment_id": paymentID,
			"payment_method":     paymentMethod,
			"updated_at":         time.Now(),
		}).Error
}

func (r *DefaultDonationRepository) ListDonations(
	ctx context.Context,
	filters domain.DonationFilters,
	skip, limit int,
) ([]*domain.Donation, int64, error) {
	var donationModels []models.DonationModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.DonationModel{})

	if filters.CollectionID != "" {
		baseQuery = baseQuery.Where("collection_id = ?", filters.CollectionID)
	}
	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	err := baseQuery.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&donationModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find donations: %w", err)
	}

	donations := make([]*domain.Donation, len(donationModels))
	for i, donationModel := range donationModels {
		donations[i] = mappers.ToDomainDonation(&donationModel)
	}

	return donations, total, nil
}

func (r *DefaultDonationRepository) FindStuckPending(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Donation, error) {
	var donationModels []models.DonationModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPending).
		Where("created_at < ?", time.Now().Add(-olderThan)).
		Order("created_at ASC").
		Limit(limit).
		Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*domain.Donation, len(donationModels))
	for i, donationModel := range donationModels {
		donations[i] = mappers.ToDomainDonation(&donationModel)
	}

	return donations, nil
}

func (r *DefaultDonationRepository) SumSuccessByCollection(ctx context.Context, collectionID string) (float64, int64, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := r.DB.WithContext(ctx).Model(&models.DonationModel{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("collection_id = ? AND status = ?", collectionID, domain.StatusSuccess).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}

	return row.Total, row.Count, nil
}

func (r *DefaultDonationRepository) CountByStatus(ctx context.Context, status domain.DonationStatus) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.DonationModel{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

func (r *DefaultDonationRepository) SumSuccessAll(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&models.DonationModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", domain.StatusSuccess).
		Scan(&total).Error
	return total, err
}
