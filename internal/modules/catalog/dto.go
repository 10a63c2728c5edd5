package catalog

type CreateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	CreditCost  int64  `json:"credit_cost" binding:"gte=0"`
}

type UpdateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	CreditCost  int64  `json:"credit_cost" binding:"gte=0"`
	IsActive    *bool  `json:"is_active"`
}

type CreatePlanRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ActivityIDs []int64 `json:"activity_ids" binding:"required,min=1"`
}
