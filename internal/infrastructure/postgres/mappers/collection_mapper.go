package mappers

import (
	"github.com/fundflow/collection-service/internal/domain"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/models"
)

func ToDomainCollection(model *models.CollectionModel) *domain.Collection {
	return &domain.Collection{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		Category:        model.Category,
		GoalAmount:      model.GoalAmount,
		CurrentAmount:   model.CurrentAmount,
		DonorCount:      model.DonorCount,
		WithdrawnAmount: model.WithdrawnAmount,
		Visibility:      model.Visibility,
		Status:          model.Status,
		Deadline:        model.Deadline,
		CoverImage:      model.CoverImage,
		OrganizerInfo: domain.OrganizerInfo{
			Name:  model.OrganizerName,
			Email: model.OrganizerEmail,
			Phone: model.OrganizerPhone,
		},
		ShareLink: model.ShareLink,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMCollection(collection *domain.Collection) *models.CollectionModel {
	return &models.CollectionModel{
		ID:              collection.ID,
		Title:           collection.Title,
		Description:     collection.Description,
		Category:        collection.Category,
		GoalAmount:      collection.GoalAmount,
		CurrentAmount:   collection.CurrentAmount,
		DonorCount:      collection.DonorCount,
		WithdrawnAmount: collection.WithdrawnAmount,
		Visibility:      collection.Visibility,
		Status:          collection.Status,
		Deadline:        collection.Deadline,
		CoverImage:      collection.CoverImage,
		OrganizerName:   collection.OrganizerInfo.Name,
		OrganizerEmail:  collection.OrganizerInfo.Email,
		OrganizerPhone:  collection.OrganizerInfo.Phone,
		ShareLink:       collection.ShareLink,
		CreatedAt:       collection.CreatedAt,
		UpdatedAt:       collection.UpdatedAt,
	}
}
