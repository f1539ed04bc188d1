package models

// Wallet holds a freelancer's funds. Escrow is credited when a client
// accepts the freelancer's proposal and moved to available on release.
type Wallet struct {
	BaseModel
	UserID           string  `gorm:"not null;uniqueIndex" json:"user_id"`
	AvailableBalance float64 `gorm:"default:0" json:"available_balance"`
	EscrowBalance    float64 `gorm:"default:0" json:"escrow_balance"`

	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"-"`
}

// WalletTransaction is an append-only ledger row. No operation ever deletes
// or rewrites one.
type WalletTransaction struct {
	BaseModel
	WalletID    string          `gorm:"not null;index" json:"wallet_id"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Note        string          `json:"note"`
	ReferenceID *string         `gorm:"index" json:"reference_id,omitempty"` // contract id, when applicable
}
