package domain

import "time"

type CollectionStatus string

const (
	CollectionActive    CollectionStatus = "active"
	CollectionCompleted CollectionStatus = "completed"
	CollectionCancelled CollectionStatus = "cancelled"
)

type CollectionVisibility string

const (
	VisibilityPublic  CollectionVisibility = "public"
	VisibilityPrivate CollectionVisibility = "private"
)

type Collection struct {
	ID              string
	Title           string
	Description     string
	Category        string
	GoalAmount      float64
	CurrentAmount   float64
	DonorCount      int64
	WithdrawnAmount float64
	Visibility      CollectionVisibility
	Status          CollectionStatus
	Deadline        string
	CoverImage      string
	OrganizerInfo   OrganizerInfo
	ShareLink       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrganizerInfo struct {
	Name  string
	Email string
	Phone string
}
