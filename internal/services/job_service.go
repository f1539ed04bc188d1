package services

import (
	"errors"

	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService struct {
	jobRepo      repositories.JobRepository
	proposalRepo repositories.ProposalRepository
}

func NewJobService(jobRepo repositories.JobRepository, proposalRepo repositories.ProposalRepository) *JobService {
	return &JobService{jobRepo: jobRepo, proposalRepo: proposalRepo}
}

func (s *JobService) Create(db *gorm.DB, clientID string, req dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Status:      models.JobStatusOpen,
	}
	if req.BudgetType != "" {
		job.BudgetType = req.BudgetType
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) GetByID(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListOpen returns only open jobs; closed and assigned jobs disappear from
// the public board.
func (s *JobService) ListOpen(db *gorm.DB, query dto.ListJobsQuery) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.ListOpen(db, repositories.JobFilter{
		Category: query.Category,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return jobs, total, nil
}

func (s *JobService) ListByClient(db *gorm.DB, clientID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByClient(db, clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ListProposals returns the proposals on a job, visible only to the job's
// owner or an admin.
func (s *JobService) ListProposals(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) ([]models.Proposal, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.ClientID != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	proposals, err := s.proposalRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return proposals, nil
}
