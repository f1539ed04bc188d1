package dto

type WithdrawRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ReleaseEscrowRequest struct {
	ContractID string `json:"contract_id" validate:"required"`
}

type WalletResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	AvailableBalance float64 `json:"available_balance"`
	EscrowBalance    float64 `json:"escrow_balance"`
}
