package response

import (
	"time"

	"github.com/fundflow/collection-service/internal/domain"
)

type CollectionResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	GoalAmount    float64 `json:"goal_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Visibility    string  `json:"visibility"`
	Status        string  `json:"status"`
	Deadline      string  `json:"deadline,omitempty"`
	CoverImage    string  `json:"cover_image,omitempty"`
	OrganizerName string  `json:"organizer_name"`
	DonorCount    int64   `json:"donor_count"`
	CreatedAt     string  `json:"created_at"`
	ShareLink     string  `json:"share_link"`
}

func FromDomainCollection(collection *domain.Collection) CollectionResponse {
	return CollectionResponse{
		ID:            collection.ID,
		Title:         collection.Title,
		Description:   collection.Description,
		Category:      collection.Category,
		GoalAmount:    collection.GoalAmount,
		CurrentAmount: collection.CurrentAmount,
		Visibility:    string(collection.Visibility),
		Status:        string(collection.Status),
		Deadline:      collection.Deadline,
		CoverImage:    collection.CoverImage,
		OrganizerName: collection.OrganizerInfo.Name,
		DonorCount:    collection.DonorCount,
		CreatedAt:     collection.CreatedAt.UTC().Format(time.RFC3339),
		ShareLink:     collection.ShareLink,
	}
}
