package repositories

import (
	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"afrilance_backend/internal/models"
)

// ContractStats summarizes a user's side of the contract table.
type ContractStats struct {
	TotalContracts     int64   `json:"total_contracts"`
	InProgress         int64   `json:"in_progress"`
	Completed          int64   `json:"completed"`
	Cancelled          int64   `json:"cancelled"`
	TotalContractValue float64 `json:"total_contract_value"`
}

// PlatformStats is the admin-facing aggregate over the whole marketplace.
type PlatformStats struct {
	TotalUsers         int64   `json:"total_users"`
	TotalFreelancers   int64   `json:"total_freelancers"`
	TotalClients       int64   `json:"total_clients"`
	VerifiedFreelancer int64   `json:"verified_freelancers"`
	TotalJobs          int64   `json:"total_jobs"`
	OpenJobs           int64   `json:"open_jobs"`
	TotalContracts     int64   `json:"total_contracts"`
	CompletedContracts int64   `json:"completed_contracts"`
	TotalEscrowHeld    float64 `json:"total_escrow_held"`
	TotalAvailable     float64 `json:"total_available"`
}

type StatsRepository interface {
	ContractStatsFor(db *gorm.DB, userID string, role models.UserRole) (*ContractStats, error)
	PlatformStats(db *gorm.DB) (*PlatformStats, error)
}

type StatsRepositoryImpl struct{}

func NewStatsRepository() StatsRepository {
	return &StatsRepositoryImpl{}
}

// Queries are built with squirrel and executed through gorm's Raw so the
// driver rebinds placeholders for the active dialect.

func (r *StatsRepositoryImpl) ContractStatsFor(db *gorm.DB, userID string, role models.UserRole) (*ContractStats, error) {
	party := "freelancer_id"
	if role == models.UserRoleClient {
		party = "client_id"
	}

	builder := sq.Select(
		"COUNT(*) AS total_contracts",
		"COUNT(CASE WHEN status = ? THEN 1 END) AS in_progress",
		"COUNT(CASE WHEN status = ? THEN 1 END) AS completed",
		"COUNT(CASE WHEN status = ? THEN 1 END) AS cancelled",
		"COALESCE(SUM(amount), 0) AS total_contract_value",
	).
		From("contracts").
		Where(sq.Eq{party: userID})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	// squirrel can't parameterize inside the select list, so the status
	// placeholders are prepended to the builder's own args.
	args = append([]interface{}{
		models.ContractStatusInProgress,
		models.ContractStatusCompleted,
		models.ContractStatusCancelled,
	}, args...)

	var stats ContractStats
	if err := db.Raw(query, args...).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepositoryImpl) PlatformStats(db *gorm.DB) (*PlatformStats, error) {
	var stats PlatformStats

	userQuery, userArgs, err := sq.Select(
		"COUNT(*) AS total_users",
		"COUNT(CASE WHEN role = ? THEN 1 END) AS total_freelancers",
		"COUNT(CASE WHEN role = ? THEN 1 END) AS total_clients",
		"COUNT(CASE WHEN role = ? AND is_verified THEN 1 END) AS verified_freelancer",
	).From("users").ToSql()
	if err != nil {
		return nil, err
	}
	userArgs = append([]interface{}{
		models.UserRoleFreelancer,
		models.UserRoleClient,
		models.UserRoleFreelancer,
	}, userArgs...)
	if err := db.Raw(userQuery, userArgs...).Scan(&stats).Error; err != nil {
		return nil, err
	}

	jobQuery, jobArgs, err := sq.Select(
		"COUNT(*) AS total_jobs",
		"COUNT(CASE WHEN status = ? THEN 1 END) AS open_jobs",
	).From("jobs").ToSql()
	if err != nil {
		return nil, err
	}
	jobArgs = append([]interface{}{models.JobStatusOpen}, jobArgs...)

	var jobPart struct {
		TotalJobs int64
		OpenJobs  int64
	}
	if err := db.Raw(jobQuery, jobArgs...).Scan(&jobPart).Error; err != nil {
		return nil, err
	}
	stats.TotalJobs = jobPart.TotalJobs
	stats.OpenJobs = jobPart.OpenJobs

	contractQuery, contractArgs, err := sq.Select(
		"COUNT(*) AS total_contracts",
		"COUNT(CASE WHEN status = ? THEN 1 END) AS completed_contracts",
	).From("contracts").ToSql()
	if err != nil {
		return nil, err
	}
	contractArgs = append([]interface{}{models.ContractStatusCompleted}, contractArgs...)

	var contractPart struct {
		TotalContracts     int64
		CompletedContracts int64
	}
	if err := db.Raw(contractQuery, contractArgs...).Scan(&contractPart).Error; err != nil {
		return nil, err
	}
	stats.TotalContracts = contractPart.TotalContracts
	stats.CompletedContracts = contractPart.CompletedContracts

	walletQuery, walletArgs, err := sq.Select(
		"COALESCE(SUM(escrow_balance), 0) AS total_escrow_held",
		"COALESCE(SUM(available_balance), 0) AS total_available",
	).From("wallets").ToSql()
	if err != nil {
		return nil, err
	}

	var walletPart struct {
		TotalEscrowHeld float64
		TotalAvailable  float64
	}
	if err := db.Raw(walletQuery, walletArgs...).Scan(&walletPart).Error; err != nil {
		return nil, err
	}
	stats.TotalEscrowHeld = walletPart.TotalEscrowHeld
	stats.TotalAvailable = walletPart.TotalAvailable

	return &stats, nil
}
