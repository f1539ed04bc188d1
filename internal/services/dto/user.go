package dto

type ListUsersQuery struct {
	Role       string `form:"role"`
	IsVerified *bool  `form:"is_verified"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// PagedResponse is the common list envelope.
type PagedResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}
