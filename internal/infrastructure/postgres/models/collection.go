package models

import (
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

type CollectionModel struct {
	ID              string                      `gorm:"primaryKey;type:uuid"`
	Title           string                      `gorm:"not null"`
	Description     string
	Category        string                      `gorm:"index"`
	GoalAmount      float64                     `gorm:"not null"`
	CurrentAmount   float64                     `gorm:"not null;default:0"`
	DonorCount      int64                       `gorm:"not null;default:0"`
	WithdrawnAmount float64                     `gorm:"not null;default:0"`
	Visibility      domain.CollectionVisibility `gorm:"index:idx_status_visibility"`
	Status          domain.CollectionStatus     `gorm:"index:idx_status_visibility"`
	Deadline        string
	CoverImage      string
	OrganizerName   string
	OrganizerEmail  string
	OrganizerPhone  string
	ShareLink       string
	CreatedAt       time.Time `gorm:"index:idx_created_at"`
	UpdatedAt       time.Time
}

func (CollectionModel) TableName() string {
	return "collections"
}
