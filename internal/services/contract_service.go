package services

import (
	"errors"
	"fmt"

	"afrilance_backend/internal/email"
	"afrilance_backend/internal/logger"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ContractService orchestrates the proposal-acceptance lifecycle and the
// contract state machine.
type ContractService struct {
	contractRepo repositories.ContractRepository
	jobRepo      repositories.JobRepository
	proposalRepo repositories.ProposalRepository
	userRepo     repositories.UserRepository
	walletRepo   repositories.WalletRepository
	mailer       email.Provider
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	jobRepo repositories.JobRepository,
	proposalRepo repositories.ProposalRepository,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	mailer email.Provider,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		jobRepo:      jobRepo,
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		mailer:       mailer,
	}
}

// AcceptProposal hires a freelancer on a job. All writes happen in one
// transaction: contract insert, escrow credit plus ledger row, the job's
// open→assigned flip, the winning proposal's accept and the rejection of
// its pending siblings. The job update is conditional on status=open, so a
// concurrent acceptance loses and rolls back.
func (s *ContractService) AcceptProposal(db *gorm.DB, jobID, clientID string, req dto.AcceptProposalRequest) (*dto.AcceptProposalResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrJobNotFound
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	proposal, err := s.proposalRepo.FindPending(db, jobID, req.FreelancerID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	freelancer, err := s.userRepo.FindByID(db, req.FreelancerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !freelancer.IsVerified {
		return nil, apperrors.ErrFreelancerNotVerified
	}

	contract := &models.Contract{
		JobID:        job.ID,
		FreelancerID: freelancer.ID,
		ClientID:     clientID,
		ProposalID:   proposal.ID,
		Amount:       proposal.BidAmount,
		Status:       models.ContractStatusInProgress,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.contractRepo.Create(tx, contract); err != nil {
			return err
		}

		wallet, werr := s.walletRepo.FindByUserID(tx, freelancer.ID)
		if werr != nil {
			if !errors.Is(werr, repositories.ErrWalletNotFound) {
				return werr
			}
			wallet = &models.Wallet{UserID: freelancer.ID}
			if werr := s.walletRepo.Create(tx, wallet); werr != nil {
				return werr
			}
		}
		if werr := s.walletRepo.CreditEscrow(tx, wallet.ID, contract.Amount); werr != nil {
			return werr
		}
		if werr := s.walletRepo.AppendTransaction(tx, &models.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionCredit,
			Amount:      contract.Amount,
			Note:        fmt.Sprintf("Escrow funded for job: %s", job.Title),
			ReferenceID: &contract.ID,
		}); werr != nil {
			return werr
		}

		rows, aerr := s.jobRepo.AssignToFreelancer(tx, job.ID, freelancer.ID, contract.ID)
		if aerr != nil {
			return aerr
		}
		if rows == 0 {
			// Lost a race with another acceptance.
			return apperrors.ErrJobNotOpen
		}

		if perr := s.proposalRepo.UpdateStatus(tx, proposal.ID, models.ProposalStatusAccepted); perr != nil {
			return perr
		}
		_, perr := s.proposalRepo.RejectOtherPending(tx, job.ID, proposal.ID)
		return perr
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	go s.notify(freelancer.Email, email.ProposalAccepted(job.Title, contract.Amount))

	return &dto.AcceptProposalResponse{
		Message:        "Proposal accepted and contract created",
		ContractID:     contract.ID,
		FreelancerName: freelancer.FullName,
		Amount:         contract.Amount,
	}, nil
}

// UpdateStatus moves a contract through its state machine. Completed and
// Cancelled cascade to the job. Funds never move here: escrow release is a
// separate admin operation.
func (s *ContractService) UpdateStatus(db *gorm.DB, contractID, actorID string, actorRole models.UserRole, newStatus string) (*models.Contract, error) {
	status := models.ContractStatus(newStatus)
	if !models.ValidContractStatus(status) {
		return nil, apperrors.ErrInvalidContractStatus
	}

	contract, err := s.contractRepo.FindByID(db, contractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if contract.FreelancerID != actorID && contract.ClientID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotContractParty
	}
	if models.TerminalContractStatus(contract.Status) {
		return nil, apperrors.ErrContractClosed
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.contractRepo.UpdateStatus(tx, contractID, status, actorID); err != nil {
			return err
		}
		switch status {
		case models.ContractStatusCompleted:
			return s.jobRepo.UpdateStatus(tx, contract.JobID, models.JobStatusCompleted)
		case models.ContractStatusCancelled:
			return s.jobRepo.UpdateStatus(tx, contract.JobID, models.JobStatusCancelled)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.contractRepo.FindByID(db, contractID)
}

// ReleaseEscrow moves a contract's amount from the freelancer's escrow to
// their available balance and closes the contract. Admin only. The job is
// left as is; only the status-update path cascades to it.
func (s *ContractService) ReleaseEscrow(db *gorm.DB, contractID string) (*models.Contract, error) {
	contract, err := s.contractRepo.FindByID(db, contractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if contract.Status == models.ContractStatusCompleted {
		return nil, apperrors.ErrEscrowAlreadyReleased
	}

	wallet, err := s.walletRepo.FindByUserID(db, contract.FreelancerID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if rerr := s.walletRepo.ReleaseEscrow(tx, wallet.ID, contract.Amount); rerr != nil {
			if errors.Is(rerr, repositories.ErrInsufficientEscrow) {
				return apperrors.ErrInsufficientEscrow
			}
			return rerr
		}
		if terr := s.walletRepo.AppendTransaction(tx, &models.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionCredit,
			Amount:      contract.Amount,
			Note:        "Escrow released for job completion",
			ReferenceID: &contract.ID,
		}); terr != nil {
			return terr
		}
		return s.contractRepo.UpdateStatus(tx, contract.ID, models.ContractStatusCompleted, contract.ClientID)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	go s.notifyRelease(db, contract)

	return s.contractRepo.FindByID(db, contractID)
}

// GetByID returns a contract to one of its parties or an admin, enriched
// with the job title and both party names.
func (s *ContractService) GetByID(db *gorm.DB, contractID, actorID string, actorRole models.UserRole) (*dto.ContractDetail, error) {
	contract, err := s.contractRepo.FindByID(db, contractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if contract.FreelancerID != actorID && contract.ClientID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotContractParty
	}

	detail := &dto.ContractDetail{Contract: *contract}
	if job, jerr := s.jobRepo.FindByID(db, contract.JobID); jerr == nil {
		detail.JobTitle = job.Title
	}
	if freelancer, uerr := s.userRepo.FindByID(db, contract.FreelancerID); uerr == nil {
		detail.FreelancerName = freelancer.FullName
	}
	if client, uerr := s.userRepo.FindByID(db, contract.ClientID); uerr == nil {
		detail.ClientName = client.FullName
	}
	return detail, nil
}

// List returns the caller's contracts, or every contract for admins.
func (s *ContractService) List(db *gorm.DB, actorID string, actorRole models.UserRole) ([]models.Contract, error) {
	var (
		contracts []models.Contract
		err       error
	)
	switch actorRole {
	case models.UserRoleFreelancer:
		contracts, err = s.contractRepo.ListByFreelancer(db, actorID)
	case models.UserRoleClient:
		contracts, err = s.contractRepo.ListByClient(db, actorID)
	case models.UserRoleAdmin:
		contracts, err = s.contractRepo.ListAll(db)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contracts, nil
}

func (s *ContractService) notify(to string, msg email.Message) {
	if s.mailer == nil || to == "" {
		return
	}
	msg.To = to
	if err := s.mailer.Send(msg); err != nil {
		logger.WithError(err).Warn("notification email not sent", "to", to)
	}
}

func (s *ContractService) notifyRelease(db *gorm.DB, contract *models.Contract) {
	freelancer, err := s.userRepo.FindByID(db, contract.FreelancerID)
	if err != nil {
		return
	}
	job, err := s.jobRepo.FindByID(db, contract.JobID)
	title := ""
	if err == nil {
		title = job.Title
	}
	s.notify(freelancer.Email, email.EscrowReleased(title, contract.Amount))
}
