package dto

type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"required,min=10"`
	Category    string  `json:"category" validate:"required"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	BudgetType  string  `json:"budget_type" validate:"omitempty,oneof=fixed hourly"`
}

type ListJobsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AcceptProposalRequest struct {
	FreelancerID string `json:"freelancer_id" validate:"required"`
}

type AcceptProposalResponse struct {
	Message        string  `json:"message"`
	ContractID     string  `json:"contract_id"`
	FreelancerName string  `json:"freelancer_name"`
	Amount         float64 `json:"amount"`
}
