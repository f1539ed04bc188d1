package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for frequent, static failures.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Auth ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// --- Jobs & proposals ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open for proposals",
	http.StatusBadRequest,
)

var ErrProposalNotFound = New(
	CodeNotFound,
	"proposal",
	"Proposal not found",
	http.StatusNotFound,
)

var ErrDuplicateProposal = New(
	CodeAlreadyExists,
	"proposal",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrFreelancerNotVerified = New(
	CodeInvalidOperation,
	"contract",
	"Cannot hire an unverified freelancer",
	http.StatusBadRequest,
)

var ErrBiddingNotAllowed = New(
	CodeForbidden,
	"proposal",
	"Your account is not yet verified to submit proposals",
	http.StatusForbidden,
)

// --- Contracts & escrow ---

var ErrContractNotFound = New(
	CodeNotFound,
	"contract",
	"Contract not found",
	http.StatusNotFound,
)

var ErrNotContractParty = New(
	CodeForbidden,
	"contract",
	"You are not a party to this contract",
	http.StatusForbidden,
)

var ErrInvalidContractStatus = New(
	CodeInvalidStatus,
	"contract",
	"Invalid contract status",
	http.StatusBadRequest,
)

var ErrContractClosed = New(
	CodeInvalidStatus,
	"contract",
	"Contract is already in a terminal state",
	http.StatusBadRequest,
)

var ErrEscrowAlreadyReleased = New(
	CodeInvalidOperation,
	"wallet",
	"Escrow has already been released for this contract",
	http.StatusBadRequest,
)

var ErrInsufficientEscrow = New(
	CodeInsufficientFunds,
	"wallet",
	"Escrow balance is lower than the contract amount",
	http.StatusBadRequest,
)

// --- Wallet ---

var ErrWalletNotFound = New(
	CodeNotFound,
	"wallet",
	"Wallet not found",
	http.StatusNotFound,
)

var ErrInvalidWithdrawAmount = New(
	CodeValidationFailed,
	"wallet",
	"Withdrawal amount must be greater than zero",
	http.StatusBadRequest,
)

var ErrInsufficientBalance = New(
	CodeInsufficientFunds,
	"wallet",
	"Insufficient available balance",
	http.StatusBadRequest,
)
