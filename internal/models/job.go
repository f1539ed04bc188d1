package models

type Job struct {
	BaseModel
	ClientID    string    `gorm:"not null;index" json:"client_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"index" json:"category"`
	Budget      float64   `gorm:"not null" json:"budget"`
	BudgetType  string    `gorm:"type:varchar(20);default:'fixed'" json:"budget_type"` // fixed | hourly
	Status      JobStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`

	ApplicationsCount    int     `gorm:"default:0" json:"applications_count"`
	AssignedFreelancerID *string `gorm:"index" json:"assigned_freelancer_id,omitempty"`
	ContractID           *string `json:"contract_id,omitempty"`
}
