package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"joyit/internal/domain"
)

func TestCalculateFullBundle(t *testing.T) {
	cfg := domain.DefaultPricing()

	// 10 participants for 6 months, snacking twice a month, teambuilding,
	// well-being once a month:
	// seats = 60; 100*60 + 60*2*10 + 60*50 + 60*1*20 = 11400
	total, err := Calculate(cfg, Params{
		Participants:       10,
		Months:             6,
		Snacking:           true,
		SnackingFrequency:  2,
		Teambuilding:       true,
		WellBeing:          true,
		WellBeingFrequency: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 11400.0, total)
}

func TestCalculateBaseOnly(t *testing.T) {
	cfg := domain.DefaultPricing()

	total, err := Calculate(cfg, Params{Participants: 5, Months: 2})

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, total)
}

func TestCalculateIgnoresFrequencyOfUnselectedServices(t *testing.T) {
	cfg := domain.DefaultPricing()

	total, err := Calculate(cfg, Params{
		Participants:      5,
		Months:            2,
		SnackingFrequency: 4, // snacking not selected
	})

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, total)
}

func TestCalculateRejectsInvalidParams(t *testing.T) {
	cfg := domain.DefaultPricing()
	cfg.MinEmployees = 5
	cfg.MinMonths = 3

	cases := []struct {
		name string
		p    Params
	}{
		{"zero participants", Params{Participants: 0, Months: 6}},
		{"negative participants", Params{Participants: -3, Months: 6}},
		{"below minimum employees", Params{Participants: 4, Months: 6}},
		{"zero months", Params{Participants: 10, Months: 0}},
		{"below minimum months", Params{Participants: 10, Months: 2}},
		{"negative snacking frequency", Params{Participants: 10, Months: 6, SnackingFrequency: -1}},
		{"snacking without frequency", Params{Participants: 10, Months: 6, Snacking: true}},
		{"well-being without frequency", Params{Participants: 10, Months: 6, WellBeing: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(cfg, tc.p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestCalculateTeambuildingHasNoFrequency(t *testing.T) {
	cfg := domain.DefaultPricing()

	total, err := Calculate(cfg, Params{Participants: 2, Months: 3, Teambuilding: true})

	assert.NoError(t, err)
	// 100*6 + 6*50
	assert.Equal(t, 900.0, total)
}
