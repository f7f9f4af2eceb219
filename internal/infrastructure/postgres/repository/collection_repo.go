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

type DefaultCollectionRepository struct {
	DB *gorm.DB
}

func NewDefaultCollectionRepository(db *gorm.DB) *DefaultCollectionRepository {
	return &DefaultCollectionRepository{DB: db}
}

func (r *DefaultCollectionRepository) CreateCollection(ctx context.Context, collection *domain.Collection) error {
	collectionModel := mappers.ToGORMCollection(collection)
	if err := r.DB.WithContext(ctx).Create(collectionModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCollectionRepository) GetCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error) {
	var collection models.CollectionModel
	if err := r.DB.WithContext(ctx).First(&collection, "id = ?", collectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCollection(&collection), nil
}

func (r *DefaultCollectionRepository) ListCollections(
	ctx context.Context,
	filters domain.CollectionFilters,
	skip, limit int,
) ([]*domain.Collection, error) {
	var collectionModels []models.CollectionModel

	query := r.DB.WithContext(ctx).Model(&models.CollectionModel{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Visibility != "" {
		query = query.Where("visibility = ?", filters.Visibility)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	err := query.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&collectionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find collections: %w", err)
	}

	collections := make([]*domain.Collection, len(collectionModels))
	for i, collectionModel := range collectionModels {
		collections[i] = mappers.ToDomainCollection(&collectionModel)
	}

	return collections, nil
}

func (r *DefaultCollectionRepository) CountCollections(ctx context.Context, status domain.CollectionStatus) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.CollectionModel{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

// IncrementCollectionAmount applies the deltas as one UPDATE with in-place
// arithmetic, never a read-modify-write round trip.
func (r *DefaultCollectionRepository) IncrementCollectionAmount(ctx context.Context, inc domain.CollectionIncrement) error {
	res := r.DB.WithContext(ctx).Model(&models.CollectionModel{}).
		Where("id = ?", inc.CollectionID).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", inc.AmountDelta),
			"donor_count":    gorm.Expr("donor_count + ?", inc.DonorDelta),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: collection %s", domain.ErrCollectionNotFound, inc.CollectionID)
	}

	return nil
}

func (r *DefaultCollectionRepository) ResetCollectionTotals(ctx context.Context, collectionID string, currentAmount float64, donorCount int64) error {
	res := r.DB.WithContext(ctx).Model(&models.CollectionModel{}).
		Where("id = ?", collectionID).
		Updates(map[string]interface{}{
			"current_amount": currentAmount,
			"donor_count":    donorCount,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: collection %s", domain.ErrCollectionNotFound, collectionID)
	}

	return nil
}
