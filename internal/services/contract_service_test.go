package services

import (
	"net/http"
	"testing"

	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContractService() *ContractService {
	return NewContractService(
		repositories.NewContractRepository(),
		repositories.NewJobRepository(),
		repositories.NewProposalRepository(),
		repositories.NewUserRepository(),
		repositories.NewWalletRepository(),
		&recordingMailer{},
	)
}

func TestAcceptProposal(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	winner := createUser(t, db, models.UserRoleFreelancer, true)
	loser := createUser(t, db, models.UserRoleFreelancer, true)
	wallet := createWallet(t, db, winner.ID)
	job := createJob(t, db, client.ID, 10000)
	winning := createProposal(t, db, job.ID, winner.ID, 9000)
	losing := createProposal(t, db, job.ID, loser.ID, 8500)

	resp, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: winner.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ContractID)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, winner.FullName, resp.FreelancerName)
	assert.Equal(t, 9000.0, resp.Amount)

	var gotJob models.Job
	require.NoError(t, db.First(&gotJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusAssigned, gotJob.Status)
	require.NotNil(t, gotJob.AssignedFreelancerID)
	assert.Equal(t, winner.ID, *gotJob.AssignedFreelancerID)
	require.NotNil(t, gotJob.ContractID)
	assert.Equal(t, resp.ContractID, *gotJob.ContractID)

	var contract models.Contract
	require.NoError(t, db.First(&contract, "id = ?", resp.ContractID).Error)
	assert.Equal(t, models.ContractStatusInProgress, contract.Status)
	assert.Equal(t, 9000.0, contract.Amount)
	assert.Equal(t, winning.ID, contract.ProposalID)

	var accepted, rejected models.Proposal
	require.NoError(t, db.First(&accepted, "id = ?", winning.ID).Error)
	require.NoError(t, db.First(&rejected, "id = ?", losing.ID).Error)
	assert.Equal(t, models.ProposalStatusAccepted, accepted.Status)
	assert.Equal(t, models.ProposalStatusRejected, rejected.Status)

	var gotWallet models.Wallet
	require.NoError(t, db.First(&gotWallet, "id = ?", wallet.ID).Error)
	assert.Equal(t, 9000.0, gotWallet.EscrowBalance)
	assert.Equal(t, 0.0, gotWallet.AvailableBalance)

	var ledger []models.WalletTransaction
	require.NoError(t, db.Find(&ledger, "wallet_id = ?", wallet.ID).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, models.TransactionCredit, ledger[0].Type)
	assert.Equal(t, 9000.0, ledger[0].Amount)
	assert.Contains(t, ledger[0].Note, job.Title)
}

func TestAcceptProposalNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	other := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	job := createJob(t, db, client.ID, 5000)
	createProposal(t, db, job.ID, freelancer.ID, 4000)

	_, err := svc.AcceptProposal(db, job.ID, other.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestAcceptProposalJobNotOpen(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	createWallet(t, db, freelancer.ID)
	job := createJob(t, db, client.ID, 5000)
	createProposal(t, db, job.ID, freelancer.ID, 4000)

	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", job.ID).
		Update("status", models.JobStatusAssigned).Error)

	_, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	requireHTTPCode(t, err, http.StatusBadRequest)

	var contracts int64
	require.NoError(t, db.Model(&models.Contract{}).Count(&contracts).Error)
	assert.Zero(t, contracts)
}

func TestAcceptProposalNoPendingProposal(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	job := createJob(t, db, client.ID, 5000)

	_, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestAcceptProposalUnverifiedFreelancer(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, false)
	wallet := createWallet(t, db, freelancer.ID)
	job := createJob(t, db, client.ID, 5000)
	createProposal(t, db, job.ID, freelancer.ID, 4000)

	_, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	requireHTTPCode(t, err, http.StatusBadRequest)

	var gotWallet models.Wallet
	require.NoError(t, db.First(&gotWallet, "id = ?", wallet.ID).Error)
	assert.Zero(t, gotWallet.EscrowBalance)

	var contracts int64
	require.NoError(t, db.Model(&models.Contract{}).Count(&contracts).Error)
	assert.Zero(t, contracts)
}

func TestAcceptProposalCreatesMissingWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	job := createJob(t, db, client.ID, 3000)
	createProposal(t, db, job.ID, freelancer.ID, 2500)

	_, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	require.NoError(t, err)

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", freelancer.ID).Error)
	assert.Equal(t, 2500.0, wallet.EscrowBalance)
}

func acceptFixture(t *testing.T, db *gorm.DB, svc *ContractService, bid float64) (client, freelancer *models.User, job *models.Job, contractID string) {
	t.Helper()

	client = createUser(t, db, models.UserRoleClient, false)
	freelancer = createUser(t, db, models.UserRoleFreelancer, true)
	createWallet(t, db, freelancer.ID)
	job = createJob(t, db, client.ID, bid)
	createProposal(t, db, job.ID, freelancer.ID, bid)

	resp, err := svc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	require.NoError(t, err)
	return client, freelancer, job, resp.ContractID
}

func TestUpdateStatusCompletedCascadesJobWithoutMovingFunds(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client, freelancer, job, contractID := acceptFixture(t, db, svc, 9000)

	updated, err := svc.UpdateStatus(db, contractID, client.ID, models.UserRoleClient, string(models.ContractStatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	var gotJob models.Job
	require.NoError(t, db.First(&gotJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusCompleted, gotJob.Status)

	// Funds stay in escrow until the dedicated release path runs.
	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", freelancer.ID).Error)
	assert.Equal(t, 9000.0, wallet.EscrowBalance)
	assert.Zero(t, wallet.AvailableBalance)
}

func TestUpdateStatusCancelledCascadesJob(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	_, freelancer, job, contractID := acceptFixture(t, db, svc, 4000)

	_, err := svc.UpdateStatus(db, contractID, freelancer.ID, models.UserRoleFreelancer, string(models.ContractStatusCancelled))
	require.NoError(t, err)

	var gotJob models.Job
	require.NoError(t, db.First(&gotJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusCancelled, gotJob.Status)
}

func TestUpdateStatusTerminalStateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client, _, _, contractID := acceptFixture(t, db, svc, 4000)

	_, err := svc.UpdateStatus(db, contractID, client.ID, models.UserRoleClient, string(models.ContractStatusCompleted))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(db, contractID, client.ID, models.UserRoleClient, string(models.ContractStatusInProgress))
	requireHTTPCode(t, err, http.StatusBadRequest)
}

func TestUpdateStatusRequiresContractParty(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	_, _, _, contractID := acceptFixture(t, db, svc, 4000)
	stranger := createUser(t, db, models.UserRoleClient, false)

	_, err := svc.UpdateStatus(db, contractID, stranger.ID, models.UserRoleClient, string(models.ContractStatusCompleted))
	requireHTTPCode(t, err, http.StatusForbidden)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client, _, _, contractID := acceptFixture(t, db, svc, 4000)

	_, err := svc.UpdateStatus(db, contractID, client.ID, models.UserRoleClient, "Paused")
	requireHTTPCode(t, err, http.StatusBadRequest)
}

func TestReleaseEscrowMovesFundsAndClosesContract(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	_, freelancer, job, contractID := acceptFixture(t, db, svc, 9000)

	released, err := svc.ReleaseEscrow(db, contractID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusCompleted, released.Status)

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", freelancer.ID).Error)
	assert.Zero(t, wallet.EscrowBalance)
	assert.Equal(t, 9000.0, wallet.AvailableBalance)

	var ledger []models.WalletTransaction
	require.NoError(t, db.Order("created_at ASC").Find(&ledger, "wallet_id = ?", wallet.ID).Error)
	require.Len(t, ledger, 2)
	assert.Equal(t, models.TransactionCredit, ledger[1].Type)
	assert.Equal(t, "Escrow released for job completion", ledger[1].Note)

	// Release deliberately leaves the job alone.
	var gotJob models.Job
	require.NoError(t, db.First(&gotJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusAssigned, gotJob.Status)
}

func TestReleaseEscrowTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	_, freelancer, _, contractID := acceptFixture(t, db, svc, 9000)

	_, err := svc.ReleaseEscrow(db, contractID)
	require.NoError(t, err)

	_, err = svc.ReleaseEscrow(db, contractID)
	requireHTTPCode(t, err, http.StatusBadRequest)

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", freelancer.ID).Error)
	assert.Equal(t, 9000.0, wallet.AvailableBalance)
}

func TestReleaseEscrowUnknownContract(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	_, err := svc.ReleaseEscrow(db, "missing")
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestGetContractDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client, freelancer, job, contractID := acceptFixture(t, db, svc, 6000)

	detail, err := svc.GetByID(db, contractID, freelancer.ID, models.UserRoleFreelancer)
	require.NoError(t, err)
	assert.Equal(t, job.Title, detail.JobTitle)
	assert.Equal(t, freelancer.FullName, detail.FreelancerName)
	assert.Equal(t, client.FullName, detail.ClientName)

	stranger := createUser(t, db, models.UserRoleFreelancer, true)
	_, err = svc.GetByID(db, contractID, stranger.ID, models.UserRoleFreelancer)
	requireHTTPCode(t, err, http.StatusForbidden)
}

func TestListContractsByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService()

	client, freelancer, _, _ := acceptFixture(t, db, svc, 1000)
	admin := createUser(t, db, models.UserRoleAdmin, true)
	otherFreelancer := createUser(t, db, models.UserRoleFreelancer, true)

	own, err := svc.List(db, freelancer.ID, models.UserRoleFreelancer)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	clientSide, err := svc.List(db, client.ID, models.UserRoleClient)
	require.NoError(t, err)
	assert.Len(t, clientSide, 1)

	all, err := svc.List(db, admin.ID, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	none, err := svc.List(db, otherFreelancer.ID, models.UserRoleFreelancer)
	require.NoError(t, err)
	assert.Empty(t, none)
}
