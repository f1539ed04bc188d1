package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contract is created exactly once per accepted proposal and is 1:1 with
// the job that spawned it.
type Contract struct {
	BaseModel
	JobID        string         `gorm:"not null;uniqueIndex" json:"job_id"`
	FreelancerID string         `gorm:"not null;index" json:"freelancer_id"`
	ClientID     string         `gorm:"not null;index" json:"client_id"`
	ProposalID   string         `gorm:"not null" json:"proposal_id"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Status       ContractStatus `gorm:"type:varchar(20);default:'In Progress';index" json:"status"`

	// Reserved for milestone-based payouts.
	Milestones datatypes.JSON `gorm:"type:jsonb" json:"milestones,omitempty"`
	Payments   datatypes.JSON `gorm:"type:jsonb" json:"payments,omitempty"`

	UpdatedBy   string     `json:"updated_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
