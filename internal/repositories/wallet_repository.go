package repositories

import (
	"errors"

	"afrilance_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientEscrow  = errors.New("insufficient escrow balance")
)

type WalletRepository interface {
	Create(db *gorm.DB, wallet *models.Wallet) error
	FindByUserID(db *gorm.DB, userID string) (*models.Wallet, error)
	// CreditEscrow adds amount to the wallet's escrow balance atomically.
	CreditEscrow(db *gorm.DB, walletID string, amount float64) error
	// ReleaseEscrow moves amount from escrow to available in one
	// conditional update; fails when escrow holds less than amount.
	ReleaseEscrow(db *gorm.DB, walletID string, amount float64) error
	// WithdrawAvailable decrements the available balance only when it
	// covers amount; the balance check and the decrement are one statement.
	WithdrawAvailable(db *gorm.DB, walletID string, amount float64) error
	AppendTransaction(db *gorm.DB, tx *models.WalletTransaction) error
	ListTransactions(db *gorm.DB, walletID string, page, pageSize int) ([]models.WalletTransaction, int64, error)
}

type WalletRepositoryImpl struct{}

func NewWalletRepository() WalletRepository {
	return &WalletRepositoryImpl{}
}

func (r *WalletRepositoryImpl) Create(db *gorm.DB, wallet *models.Wallet) error {
	return db.Create(wallet).Error
}

func (r *WalletRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Wallet, error) {
	var w models.Wallet
	err := db.First(&w, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepositoryImpl) CreditEscrow(db *gorm.DB, walletID string, amount float64) error {
	result := db.Model(&models.Wallet{}).Where("id = ?", walletID).
		Update("escrow_balance", gorm.Expr("escrow_balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepositoryImpl) ReleaseEscrow(db *gorm.DB, walletID string, amount float64) error {
	result := db.Model(&models.Wallet{}).
		Where("id = ? AND escrow_balance >= ?", walletID, amount).
		Updates(map[string]interface{}{
			"escrow_balance":    gorm.Expr("escrow_balance - ?", amount),
			"available_balance": gorm.Expr("available_balance + ?", amount),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientEscrow
	}
	return nil
}

func (r *WalletRepositoryImpl) WithdrawAvailable(db *gorm.DB, walletID string, amount float64) error {
	result := db.Model(&models.Wallet{}).
		Where("id = ? AND available_balance >= ?", walletID, amount).
		Update("available_balance", gorm.Expr("available_balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (r *WalletRepositoryImpl) AppendTransaction(db *gorm.DB, tx *models.WalletTransaction) error {
	return db.Create(tx).Error
}

func (r *WalletRepositoryImpl) ListTransactions(db *gorm.DB, walletID string, page, pageSize int) ([]models.WalletTransaction, int64, error) {
	query := db.Model(&models.WalletTransaction{}).Where("wallet_id = ?", walletID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var txs []models.WalletTransaction
	if err := query.Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}
