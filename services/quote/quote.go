package quote

import (
	"math"

	"tidyhouse/models"
)

// Pricing constants for the size-tier scheme.
const (
	// MinimumPrice is the floor every priced quote is clamped to.
	MinimumPrice = 80

	bathroomRate = 0.25
	deepCleanFee = 60
)

// basePrices maps a home size tier to its package base price in dollars.
var basePrices = map[string]float64{
	models.HomeSizeStudio: 80,
	models.HomeSize1BR:    100,
	models.HomeSize2BR:    140,
	models.HomeSize3BR:    190,
	models.HomeSize4BR:    250,
	models.HomeSize5BR:    320,
}

// frequencyDiscounts are flat dollar reductions for recurring service.
var frequencyDiscounts = map[string]float64{
	models.FrequencyOneTime:  0,
	models.FrequencyWeekly:   -30,
	models.FrequencyBiWeekly: -15,
	models.FrequencyMonthly:  -10,
}

// Calculate maps a booking configuration to a whole-dollar price. It is pure:
// the form recomputes it on every field change, so it must be cheap and
// side-effect free.
//
// A configuration without a recognized home size tier quotes 0, meaning "not
// yet priced" rather than an error. Once a tier is selected the result is
// clamped to MinimumPrice. The floor is applied after add-ons, so selecting
// an add-on can never lower the total.
func Calculate(cfg models.BookingConfiguration) int {
	base, ok := basePrices[cfg.HomeSize]
	if !ok {
		return 0
	}

	price := base
	price += float64(cfg.Bathrooms) * bathroomRate

	if cfg.CleaningType == models.CleaningTypeDeep {
		price += deepCleanFee
	}

	price += frequencyDiscounts[cfg.CleaningNeeds]

	for _, id := range cfg.AddOns {
		if addOn, ok := AddOnByID(id); ok {
			price += float64(addOn.Price)
		}
	}

	total := int(math.Round(price))
	if total < MinimumPrice {
		total = MinimumPrice
	}
	return total
}
