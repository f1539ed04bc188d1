package repositories

import (
	"errors"
	"time"

	"afrilance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContractNotFound = errors.New("contract not found")

type ContractRepository interface {
	Create(db *gorm.DB, contract *models.Contract) error
	FindByID(db *gorm.DB, id string) (*models.Contract, error)
	// UpdateStatus records who moved the contract and stamps CompletedAt
	// when the new status is Completed.
	UpdateStatus(db *gorm.DB, contractID string, status models.ContractStatus, updatedBy string) error
	ListByFreelancer(db *gorm.DB, freelancerID string) ([]models.Contract, error)
	ListByClient(db *gorm.DB, clientID string) ([]models.Contract, error)
	ListAll(db *gorm.DB) ([]models.Contract, error)
}

type ContractRepositoryImpl struct{}

func NewContractRepository() ContractRepository {
	return &ContractRepositoryImpl{}
}

func (r *ContractRepositoryImpl) Create(db *gorm.DB, contract *models.Contract) error {
	return db.Create(contract).Error
}

func (r *ContractRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Contract, error) {
	var c models.Contract
	err := db.First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContractRepositoryImpl) UpdateStatus(db *gorm.DB, contractID string, status models.ContractStatus, updatedBy string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_by": updatedBy,
	}
	if status == models.ContractStatusCompleted {
		updates["completed_at"] = time.Now()
	}
	result := db.Model(&models.Contract{}).Where("id = ?", contractID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContractNotFound
	}
	return nil
}

func (r *ContractRepositoryImpl) ListByFreelancer(db *gorm.DB, freelancerID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := db.Where("freelancer_id = ?", freelancerID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepositoryImpl) ListByClient(db *gorm.DB, clientID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepositoryImpl) ListAll(db *gorm.DB) ([]models.Contract, error) {
	var contracts []models.Contract
	err := db.Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}
