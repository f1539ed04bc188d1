package services

import (
	"net/http"
	"testing"

	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletService() *WalletService {
	return NewWalletService(repositories.NewWalletRepository(), repositories.NewUserRepository())
}

func TestGetOrCreateWalletLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)

	wallet, err := svc.GetOrCreate(db, freelancer.ID)
	require.NoError(t, err)
	assert.Zero(t, wallet.AvailableBalance)
	assert.Zero(t, wallet.EscrowBalance)

	again, err := svc.GetOrCreate(db, freelancer.ID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)
}

func TestGetOrCreateWalletUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	_, err := svc.GetOrCreate(db, "missing")
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestGetOrCreateWalletRejectsClients(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	client := createUser(t, db, models.UserRoleClient, false)

	_, err := svc.GetOrCreate(db, client.ID)
	requireHTTPCode(t, err, http.StatusBadRequest)
}

func TestWithdraw(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	wallet := createWallet(t, db, freelancer.ID)
	require.NoError(t, db.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Update("available_balance", 5000).Error)

	updated, err := svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 3000})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.AvailableBalance)

	var ledger []models.WalletTransaction
	require.NoError(t, db.Find(&ledger, "wallet_id = ?", wallet.ID).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, models.TransactionDebit, ledger[0].Type)
	assert.Equal(t, 3000.0, ledger[0].Amount)
	assert.Equal(t, "Freelancer withdrawal", ledger[0].Note)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	wallet := createWallet(t, db, freelancer.ID)
	require.NoError(t, db.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Update("available_balance", 100).Error)

	_, err := svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 101})
	requireHTTPCode(t, err, http.StatusBadRequest)

	// Balance untouched, no ledger row.
	var got models.Wallet
	require.NoError(t, db.First(&got, "id = ?", wallet.ID).Error)
	assert.Equal(t, 100.0, got.AvailableBalance)

	var count int64
	require.NoError(t, db.Model(&models.WalletTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithdrawNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	createWallet(t, db, freelancer.ID)

	_, err := svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 0})
	requireHTTPCode(t, err, http.StatusBadRequest)

	_, err = svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: -50})
	requireHTTPCode(t, err, http.StatusBadRequest)
}

func TestWithdrawWithoutWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)

	_, err := svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 10})
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestLedgerGrowsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newWalletService()

	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	wallet := createWallet(t, db, freelancer.ID)
	require.NoError(t, db.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Update("available_balance", 1000).Error)

	for i := 0; i < 4; i++ {
		_, err := svc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 100})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.WalletTransaction{}).
			Where("wallet_id = ?", wallet.ID).Count(&count).Error)
		assert.Equal(t, int64(i+1), count)
	}
}

// Full lifecycle: accept a 9000 bid, release escrow, withdraw to zero.
func TestEscrowLifecycleEndToEnd(t *testing.T) {
	db := newTestDB(t)
	contractSvc := newContractService()
	walletSvc := newWalletService()

	client := createUser(t, db, models.UserRoleClient, false)
	freelancer := createUser(t, db, models.UserRoleFreelancer, true)
	createWallet(t, db, freelancer.ID)
	job := createJob(t, db, client.ID, 10000)
	createProposal(t, db, job.ID, freelancer.ID, 9000)

	resp, err := contractSvc.AcceptProposal(db, job.ID, client.ID, dto.AcceptProposalRequest{FreelancerID: freelancer.ID})
	require.NoError(t, err)

	_, err = contractSvc.ReleaseEscrow(db, resp.ContractID)
	require.NoError(t, err)

	wallet, err := walletSvc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 9000})
	require.NoError(t, err)
	assert.Zero(t, wallet.AvailableBalance)
	assert.Zero(t, wallet.EscrowBalance)

	// One more cent is refused.
	_, err = walletSvc.Withdraw(db, freelancer.ID, dto.WithdrawRequest{Amount: 0.01})
	requireHTTPCode(t, err, http.StatusBadRequest)

	txs, total, err := walletSvc.ListTransactions(db, freelancer.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, txs, 3)
}
