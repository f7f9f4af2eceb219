package collectiondto

type PlatformStats struct {
	TotalCollections int64   `json:"total_collections"`
	TotalDonations   int64   `json:"total_donations"`
	TotalRaised      float64 `json:"total_raised"`
}
