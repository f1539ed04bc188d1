package models

// Proposal is a freelancer's bid on a job. At most one proposal exists per
// (job, freelancer) pair.
type Proposal struct {
	BaseModel
	JobID        string         `gorm:"not null;index:idx_proposal_job_freelancer,unique" json:"job_id"`
	FreelancerID string         `gorm:"not null;index:idx_proposal_job_freelancer,unique" json:"freelancer_id"`
	Proposal     string         `gorm:"not null" json:"proposal"`
	BidAmount    float64        `gorm:"not null" json:"bid_amount"`
	Status       ProposalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
