package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type DonationReconciledEvent struct {
	ID           uint `gorm:"primaryKey"`
	OrderID      string
	CollectionID string
	OldStatus    string
	NewStatus    string
	Trigger      string
	Amount       float64
	Currency     string
	Timestamp    time.Time
}

type DonationFailedEvent struct {
	ID           uint `gorm:"primaryKey"`
	OrderID      string
	CollectionID string
	Reason       string
	Trigger      string
	Amount       float64
	Timestamp    time.Time
}

type DonationEventLogger interface {
	LogDonationReconciled(ctx context.Context, event DonationReconciledEvent) error
	LogDonationFailed(ctx context.Context, event DonationFailedEvent) error
}

type PGDonationEventLogger struct {
	db *gorm.DB
}

func NewPGDonationEventLogger(db *gorm.DB) *PGDonationEventLogger {
	return &PGDonationEventLogger{db: db}
}

func (l *PGDonationEventLogger) LogDonationReconciled(ctx context.Context, event DonationReconciledEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGDonationEventLogger) LogDonationFailed(ctx context.Context, event DonationFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
