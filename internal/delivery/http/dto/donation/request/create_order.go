package request

type CreatePaymentOrderRequest struct {
	CollectionID string  `json:"collection_id" binding:"required"`
	DonorName    string  `json:"donor_name" binding:"required"`
	DonorEmail   string  `json:"donor_email" binding:"required,email"`
	DonorPhone   string  `json:"donor_phone" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Message      string  `json:"message"`
	Anonymous    bool    `json:"anonymous"`
}
