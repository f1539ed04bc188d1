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

func newAuthService() *AuthService {
	return NewAuthService(repositories.NewUserRepository(), repositories.NewWalletRepository())
}

func TestRegisterFreelancerCreatesWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	resp, err := svc.Register(db, dto.RegisterRequest{
		Email:    "dev@test.local",
		Password: "secret123",
		FullName: "Dev Eloper",
		Role:     "freelancer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.False(t, resp.User.IsVerified)
	assert.False(t, resp.User.CanBid)

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", resp.User.ID).Error)
	assert.Zero(t, wallet.AvailableBalance)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", resp.User.ID).Error)
	assert.True(t, user.VerificationRequired)
}

func TestRegisterClientHasNoWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	resp, err := svc.Register(db, dto.RegisterRequest{
		Email:    "buyer@test.local",
		Password: "secret123",
		FullName: "Big Buyer",
		Role:     "client",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Wallet{}).
		Where("user_id = ?", resp.User.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	req := dto.RegisterRequest{
		Email:    "dup@test.local",
		Password: "secret123",
		FullName: "First One",
		Role:     "client",
	}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	_, err = svc.Register(db, req)
	requireHTTPCode(t, err, http.StatusConflict)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, dto.RegisterRequest{
		Email:    "weak@test.local",
		Password: "12345",
		FullName: "Weak Pass",
		Role:     "client",
	})
	requireHTTPCode(t, err, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, dto.RegisterRequest{
		Email:    "login@test.local",
		Password: "secret123",
		FullName: "Log In",
		Role:     "freelancer",
	})
	require.NoError(t, err)

	resp, err := svc.Login(db, dto.LoginRequest{Email: "login@test.local", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)

	_, err = svc.Login(db, dto.LoginRequest{Email: "login@test.local", Password: "wrong"})
	requireHTTPCode(t, err, http.StatusUnauthorized)

	_, err = svc.Login(db, dto.LoginRequest{Email: "nobody@test.local", Password: "secret123"})
	requireHTTPCode(t, err, http.StatusUnauthorized)
}

func TestLoginSuspendedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	resp, err := svc.Register(db, dto.RegisterRequest{
		Email:    "banned@test.local",
		Password: "secret123",
		FullName: "Ban Ned",
		Role:     "freelancer",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", resp.User.ID).
		Update("status", models.UserStatusSuspended).Error)

	_, err = svc.Login(db, dto.LoginRequest{Email: "banned@test.local", Password: "secret123"})
	requireHTTPCode(t, err, http.StatusForbidden)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	resp, err := svc.Register(db, dto.RegisterRequest{
		Email:    "rotate@test.local",
		Password: "secret123",
		FullName: "Ro Tate",
		Role:     "client",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(db, dto.RefreshRequest{RefreshToken: resp.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.Tokens.RefreshToken, pair.RefreshToken)

	// The consumed token is gone.
	_, err = svc.Refresh(db, dto.RefreshRequest{RefreshToken: resp.Tokens.RefreshToken})
	requireHTTPCode(t, err, http.StatusUnauthorized)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	resp, err := svc.Register(db, dto.RegisterRequest{
		Email:    "leave@test.local",
		Password: "secret123",
		FullName: "Lea Ver",
		Role:     "client",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(db, dto.LogoutRequest{RefreshToken: resp.Tokens.RefreshToken}))

	_, err = svc.Refresh(db, dto.RefreshRequest{RefreshToken: resp.Tokens.RefreshToken})
	requireHTTPCode(t, err, http.StatusUnauthorized)
}
