package collectiondto

type CreateCollectionInput struct {
	Title          string
	Description    string
	Category       string
	GoalAmount     float64
	Visibility     string
	Deadline       string
	CoverImage     string
	OrganizerName  string
	OrganizerEmail string
	OrganizerPhone string
}

type ListCollectionsInput struct {
	Visibility string
	Category   string
	Skip       int
	Limit      int
}
