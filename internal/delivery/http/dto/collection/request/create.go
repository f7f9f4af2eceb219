package request

type CreateCollectionRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	GoalAmount     float64 `json:"goal_amount" binding:"required,gt=0"`
	Visibility     string  `json:"visibility" binding:"omitempty,oneof=public private"`
	Deadline       string  `json:"deadline"`
	CoverImage     string  `json:"cover_image"`
	OrganizerName  string  `json:"organizer_name" binding:"required"`
	OrganizerEmail string  `json:"organizer_email" binding:"required,email"`
	OrganizerPhone string  `json:"organizer_phone"`
}
