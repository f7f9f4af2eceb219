package response

import (
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

type PaymentOrderResponse struct {
	OrderID          string `json:"order_id"`
	CfOrderID        string `json:"cf_order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

type VerifyPaymentResponse struct {
	OrderID       string  `json:"order_id"`
	Status        string  `json:"status"`
	CfOrderStatus string  `json:"cf_order_status,omitempty"`
	Amount        float64 `json:"amount"`
	CollectionID  string  `json:"collection_id"`
	Message       string  `json:"message,omitempty"`
}

type DonationResponse struct {
	ID           string  `json:"id"`
	CollectionID string  `json:"collection_id"`
	DonorName    string  `json:"donor_name"`
	Amount       float64 `json:"amount"`
	Message      string  `json:"message,omitempty"`
	Anonymous    bool    `json:"anonymous"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func FromDomainDonation(donation *domain.Donation) DonationResponse {
	return DonationResponse{
		ID:           donation.ID,
		CollectionID: donation.CollectionID,
		DonorName:    donation.DonorInfo.Name,
		Amount:       donation.Amount,
		Message:      donation.Message,
		Anonymous:    donation.Anonymous,
		Status:       string(donation.Status),
		CreatedAt:    donation.CreatedAt.UTC().Format(time.RFC3339),
	}
}
