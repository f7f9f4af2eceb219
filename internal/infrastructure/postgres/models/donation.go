package models

import (
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

type DonationModel struct {
	ID               string                `gorm:"primaryKey;type:uuid"`
	OrderID          string                `gorm:"uniqueIndex;not null"`
	CollectionID     string                `gorm:"type:uuid;index;not null"`
	Status           domain.DonationStatus `gorm:"index:idx_status_created;not null"`
	DonorName        string
	DonorEmail       string
	DonorPhone       string
	Amount           float64 `gorm:"not null"`
	Message          string
	Anonymous        bool
	GatewayOrderID   string
	PaymentSessionID string
	GatewayPaymentID string
	PaymentMethod    string
	CreatedAt        time.Time `gorm:"index:idx_status_created"`
	UpdatedAt        time.Time
}

func (DonationModel) TableName() string {
	return "donations"
}
