package services

import (
	"errors"

	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WalletService struct {
	walletRepo repositories.WalletRepository
	userRepo   repositories.UserRepository
}

func NewWalletService(walletRepo repositories.WalletRepository, userRepo repositories.UserRepository) *WalletService {
	return &WalletService{walletRepo: walletRepo, userRepo: userRepo}
}

// GetOrCreate returns the freelancer's wallet, creating an empty one if it
// is missing. Only freelancers hold wallets.
func (s *WalletService) GetOrCreate(db *gorm.DB, userID string) (*models.Wallet, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleFreelancer {
		return nil, apperrors.ErrInvalidUserRole
	}

	wallet, err := s.walletRepo.FindByUserID(db, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, repositories.ErrWalletNotFound) {
		return nil, apperrors.InternalError(err)
	}

	wallet = &models.Wallet{UserID: userID}
	if err := s.walletRepo.Create(db, wallet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return wallet, nil
}

// Withdraw debits the available balance. The balance check and the debit
// are a single conditional update, so two concurrent withdrawals can never
// drive the balance negative.
func (s *WalletService) Withdraw(db *gorm.DB, userID string, req dto.WithdrawRequest) (*models.Wallet, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidWithdrawAmount
	}

	wallet, err := s.walletRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if werr := s.walletRepo.WithdrawAvailable(tx, wallet.ID, req.Amount); werr != nil {
			if errors.Is(werr, repositories.ErrInsufficientBalance) {
				return apperrors.ErrInsufficientBalance
			}
			return werr
		}
		return s.walletRepo.AppendTransaction(tx, &models.WalletTransaction{
			WalletID: wallet.ID,
			Type:     models.TransactionDebit,
			Amount:   req.Amount,
			Note:     "Freelancer withdrawal",
		})
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	return s.walletRepo.FindByUserID(db, userID)
}

func (s *WalletService) ListTransactions(db *gorm.DB, userID string, page, pageSize int) ([]models.WalletTransaction, int64, error) {
	wallet, err := s.walletRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, 0, apperrors.ErrWalletNotFound
		}
		return nil, 0, apperrors.InternalError(err)
	}

	txs, total, err := s.walletRepo.ListTransactions(db, wallet.ID, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return txs, total, nil
}
