package mappers

import (
	"github.com/fundflow/collection-service/internal/domain"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/models"
)

func ToDomainDonation(model *models.DonationModel) *domain.Donation {
	return &domain.Donation{
		ID:           model.ID,
		OrderID:      model.OrderID,
		CollectionID: model.CollectionID,
		Status:       model.Status,
		DonorInfo: domain.DonorInfo{
			Name:  model.DonorName,
			Email: model.DonorEmail,
			Phone: model.DonorPhone,
		},
		Amount:    model.Amount,
		Message:   model.Message,
		Anonymous: model.Anonymous,
		GatewayInfo: domain.GatewayInfo{
			GatewayOrderID:   model.GatewayOrderID,
			PaymentSessionID: model.PaymentSessionID,
			PaymentID:        model.GatewayPaymentID,
			PaymentMethod:    model.PaymentMethod,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMDonation(donation *domain.Donation) *models.DonationModel {
	return &models.DonationModel{
		ID:               donation.ID,
		OrderID:          donation.OrderID,
		CollectionID:     donation.CollectionID,
		Status:           donation.Status,
		DonorName:        donation.DonorInfo.Name,
		DonorEmail:       donation.DonorInfo.Email,
		DonorPhone:       donation.DonorInfo.Phone,
		Amount:           donation.Amount,
		Message:          donation.Message,
		Anonymous:        donation.Anonymous,
		GatewayOrderID:   donation.GatewayInfo.GatewayOrderID,
		PaymentSessionID: donation.GatewayInfo.PaymentSessionID,
		GatewayPaymentID: donation.GatewayInfo.PaymentID,
		PaymentMethod:    donation.GatewayInfo.PaymentMethod,
		CreatedAt:        donation.CreatedAt,
		UpdatedAt:        donation.UpdatedAt,
	}
}
