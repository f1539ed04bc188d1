package dto

type ApplyRequest struct {
	Proposal  string  `json:"proposal" validate:"required,min=10"`
	BidAmount float64 `json:"bid_amount" validate:"required,gt=0"`
}
