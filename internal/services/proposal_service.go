package services

import (
	"errors"

	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProposalService struct {
	proposalRepo repositories.ProposalRepository
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
}

func NewProposalService(
	proposalRepo repositories.ProposalRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) *ProposalService {
	return &ProposalService{proposalRepo: proposalRepo, jobRepo: jobRepo, userRepo: userRepo}
}

// Apply submits a freelancer's proposal on an open job. A job that is no
// longer open reads as not found to applicants. One proposal per
// freelancer per job.
func (s *ProposalService) Apply(db *gorm.DB, jobID, freelancerID string, req dto.ApplyRequest) (*models.Proposal, error) {
	freelancer, err := s.userRepo.FindByID(db, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if freelancer.Role != models.UserRoleFreelancer {
		return nil, apperrors.ErrInvalidUserRole
	}
	if !freelancer.CanBid {
		return nil, apperrors.ErrBiddingNotAllowed
	}

	job, err := s.jobRepo.FindOpenByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.proposalRepo.ExistsForJob(db, job.ID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateProposal
	}

	proposal := &models.Proposal{
		JobID:        job.ID,
		FreelancerID: freelancerID,
		Proposal:     req.Proposal,
		BidAmount:    req.BidAmount,
		Status:       models.ProposalStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.proposalRepo.Create(tx, proposal); err != nil {
			return err
		}
		return s.jobRepo.IncrementApplications(tx, job.ID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return proposal, nil
}

func (s *ProposalService) ListByFreelancer(db *gorm.DB, freelancerID string) ([]models.Proposal, error) {
	proposals, err := s.proposalRepo.ListByFreelancer(db, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return proposals, nil
}
