package models

type UserRole string
type UserStatus string
type JobStatus string
type ProposalStatus string
type ContractStatus string
type TransactionType string

const (
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleClient     UserRole = "client"
	UserRoleAdmin      UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"

	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"

	// Contract statuses use human-readable wire values.
	ContractStatusInProgress ContractStatus = "In Progress"
	ContractStatusCompleted  ContractStatus = "Completed"
	ContractStatusCancelled  ContractStatus = "Cancelled"

	TransactionCredit TransactionType = "Credit"
	TransactionDebit  TransactionType = "Debit"
)

// ValidContractStatus reports whether s is one of the accepted contract
// status strings.
func ValidContractStatus(s ContractStatus) bool {
	switch s {
	case ContractStatusInProgress, ContractStatusCompleted, ContractStatusCancelled:
		return true
	}
	return false
}

// TerminalContractStatus reports whether s is a terminal state.
func TerminalContractStatus(s ContractStatus) bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}
