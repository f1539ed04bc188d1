package services

import (
	"errors"
	"time"

	"afrilance_backend/internal/auth"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
}

func NewAuthService(userRepo repositories.UserRepository, walletRepo repositories.WalletRepository) *AuthService {
	return &AuthService{userRepo: userRepo, walletRepo: walletRepo}
}

// Register creates the user and, for freelancers, an empty wallet in the
// same transaction. Freelancers start unverified and cannot bid until an
// admin verifies them.
func (s *AuthService) Register(db *gorm.DB, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.Role)
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if role == models.UserRoleFreelancer {
		user.VerificationRequired = true
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		if role == models.UserRoleFreelancer {
			return s.walletRepo.Create(tx, &models.Wallet{UserID: user.ID})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	tokens, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(user), Tokens: *tokens}, nil
}

func (s *AuthService) Login(db *gorm.DB, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	tokens, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(user), Tokens: *tokens}, nil
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *AuthService) Refresh(db *gorm.DB, req dto.RefreshRequest) (*dto.TokenPair, error) {
	stored, err := s.userRepo.FindRefreshToken(db, req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	if err := s.userRepo.DeleteRefreshToken(db, stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *AuthService) Logout(db *gorm.DB, req dto.LogoutRequest) error {
	if err := s.userRepo.DeleteRefreshToken(db, req.RefreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*dto.TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := uuid.NewString()
	err = s.userRepo.CreateRefreshToken(db, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
