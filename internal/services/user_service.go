package services

import (
	"errors"

	"afrilance_backend/internal/email"
	"afrilance_backend/internal/logger"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewUserService(userRepo repositories.UserRepository, mailer email.Provider) *UserService {
	return &UserService{userRepo: userRepo, mailer: mailer}
}

func (s *UserService) GetByID(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) List(db *gorm.DB, query dto.ListUsersQuery) ([]models.User, int64, error) {
	criteria := repositories.UserFilter{
		Role:       models.UserRole(query.Role),
		IsVerified: query.IsVerified,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	users, total, err := s.userRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}

// Verify marks a freelancer as verified and grants bidding rights. Only
// freelancers carry the verification flags; verifying any other role is
// rejected.
func (s *UserService) Verify(db *gorm.DB, userID string) (*models.User, error) {
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

	if err := s.userRepo.VerifyUser(db, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.CanBid = true
	user.VerificationRequired = false

	go s.notifyVerified(user.Email)

	return user, nil
}

func (s *UserService) notifyVerified(to string) {
	if s.mailer == nil {
		return
	}
	msg := email.AccountVerified()
	msg.To = to
	if err := s.mailer.Send(msg); err != nil {
		logger.WithError(err).Warn("verification email not sent", "to", to)
	}
}
