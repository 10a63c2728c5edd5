package serviceorder

type OrderDetailRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Frequency   int    `json:"frequency" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Participants   int                  `json:"participants" binding:"required,gt=0"`
	DurationMonths int                  `json:"duration_months" binding:"required,gt=0"`
	Details        []OrderDetailRequest `json:"details" binding:"required,min=1,dive"`
}
