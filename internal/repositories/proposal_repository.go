package repositories

import (
	"errors"

	"afrilance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProposalNotFound = errors.New("proposal not found")

type ProposalRepository interface {
	Create(db *gorm.DB, proposal *models.Proposal) error
	FindByID(db *gorm.DB, id string) (*models.Proposal, error)
	// FindPending locates the pending proposal a freelancer holds on a job.
	FindPending(db *gorm.DB, jobID, freelancerID string) (*models.Proposal, error)
	ExistsForJob(db *gorm.DB, jobID, freelancerID string) (bool, error)
	UpdateStatus(db *gorm.DB, proposalID string, status models.ProposalStatus) error
	// RejectOtherPending flips every other pending proposal on the job to
	// rejected and returns how many were affected.
	RejectOtherPending(db *gorm.DB, jobID, acceptedID string) (int64, error)
	ListByJob(db *gorm.DB, jobID string) ([]models.Proposal, error)
	ListByFreelancer(db *gorm.DB, freelancerID string) ([]models.Proposal, error)
}

type ProposalRepositoryImpl struct{}

func NewProposalRepository() ProposalRepository {
	return &ProposalRepositoryImpl{}
}

func (r *ProposalRepositoryImpl) Create(db *gorm.DB, proposal *models.Proposal) error {
	return db.Create(proposal).Error
}

func (r *ProposalRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Proposal, error) {
	var p models.Proposal
	err := db.First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepositoryImpl) FindPending(db *gorm.DB, jobID, freelancerID string) (*models.Proposal, error) {
	var p models.Proposal
	err := db.First(&p, "job_id = ? AND freelancer_id = ? AND status = ?",
		jobID, freelancerID, models.ProposalStatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepositoryImpl) ExistsForJob(db *gorm.DB, jobID, freelancerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Proposal{}).
		Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProposalRepositoryImpl) UpdateStatus(db *gorm.DB, proposalID string, status models.ProposalStatus) error {
	return db.Model(&models.Proposal{}).Where("id = ?", proposalID).Update("status", status).Error
}

func (r *ProposalRepositoryImpl) RejectOtherPending(db *gorm.DB, jobID, acceptedID string) (int64, error) {
	result := db.Model(&models.Proposal{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, acceptedID, models.ProposalStatusPending).
		Update("status", models.ProposalStatusRejected)
	return result.RowsAffected, result.Error
}

func (r *ProposalRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&proposals).Error
	return proposals, err
}

func (r *ProposalRepositoryImpl) ListByFreelancer(db *gorm.DB, freelancerID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.Where("freelancer_id = ?", freelancerID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}
