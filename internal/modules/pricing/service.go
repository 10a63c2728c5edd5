package pricing

import (
	"context"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetConfig returns the singleton rate row, creating it with defaults on
// first use.
func (s *Service) GetConfig(ctx context.Context) (*domain.Pricing, error) {
	var cfg domain.Pricing
	def := domain.DefaultPricing()
	err := s.db.WithContext(ctx).
		Where(domain.Pricing{ID: 1}).
		Attrs(def).
		FirstOrCreate(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

type UpdateConfigRequest struct {
	BasePrice        float64 `json:"base_price" binding:"required,gte=0"`
	SnackingRate     float64 `json:"snacking_rate" binding:"gte=0"`
	TeambuildingRate float64 `json:"teambuilding_rate" binding:"gte=0"`
	WellBeingRate    float64 `json:"well_being_rate" binding:"gte=0"`
	MinEmployees     int     `json:"min_employees" binding:"gte=1"`
	MinMonths        int     `json:"min_months" binding:"gte=1"`
}

func (s *Service) UpdateConfig(ctx context.Context, req UpdateConfigRequest) (*domain.Pricing, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&domain.Pricing{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]interface{}{
			"base_price":        req.BasePrice,
			"snacking_rate":     req.SnackingRate,
			"teambuilding_rate": req.TeambuildingRate,
			"well_being_rate":   req.WellBeingRate,
			"min_employees":     req.MinEmployees,
			"min_months":        req.MinMonths,
		}).Error
	if err != nil {
		return nil, err
	}
	return s.GetConfig(ctx)
}

// Quote calculates a total against the current configuration. Rates are
// read fresh on every call, an admin update takes effect immediately.
func (s *Service) Quote(ctx context.Context, p Params) (float64, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return 0, err
	}
	return Calculate(*cfg, p)
}
