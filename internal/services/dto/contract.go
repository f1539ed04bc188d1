package dto

import "afrilance_backend/internal/models"

type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ContractDetail is the single-contract read, enriched with the job title
// and both party names.
type ContractDetail struct {
	models.Contract
	JobTitle       string `json:"job_title"`
	FreelancerName string `json:"freelancer_name"`
	ClientName     string `json:"client_name"`
}
