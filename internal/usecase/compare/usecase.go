package compare

import (
	"fmt"
	"sort"
	"strings"

	"moving-quote-agent/internal/domain/entity"
)

// Company is one entry in the static pricing catalog. Rates are simulated
// demo data, not live quotes.
type Company struct {
	Name         string
	BaseFee      float64
	RatePerMile  float64
	DepositFee   float64
	InsurancePer float64 // per day
	Rating       float64
}

func DefaultCatalog() []Company {
	return []Company{
		{Name: "QuickMove Pro", BaseFee: 350, RatePerMile: 0.42, DepositFee: 150, InsurancePer: 28, Rating: 4.8},
		{Name: "SafeHaul Movers", BaseFee: 295, RatePerMile: 0.48, DepositFee: 200, InsurancePer: 32, Rating: 4.6},
		{Name: "Elite Relocations", BaseFee: 420, RatePerMile: 0.55, DepositFee: 250, InsurancePer: 40, Rating: 4.9},
	}
}

type UseCase struct {
	catalog []Company
}

func New(catalog []Company) *UseCase {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	return &UseCase{catalog: catalog}
}

// Compare prices the move with every configured company and returns the
// ranked result, cheapest first. One configured company yields a
// single-element list, not an error.
func (uc *UseCase) Compare(profile entity.ExtractedProfile) entity.QuoteComparison {
	distance := EstimateDistance(profile.Origin, profile.Destination)

	options := make([]entity.QuoteOption, 0, len(uc.catalog))
	for _, c := range uc.catalog {
		mileage := float64(distance) * c.RatePerMile
		total := c.BaseFee + mileage + c.DepositFee + c.InsurancePer

		options = append(options, entity.QuoteOption{
			Company:  c.Name,
			Total:    round2(total),
			Currency: "USD",
			Rating:   c.Rating,
			Breakdown: map[string]string{
				"base_fee":  fmt.Sprintf("$%.0f", c.BaseFee),
				"mileage":   fmt.Sprintf("$%.2f/mile x %d mi", c.RatePerMile, distance),
				"deposit":   fmt.Sprintf("$%.0f", c.DepositFee),
				"insurance": fmt.Sprintf("$%.0f/day", c.InsurancePer),
			},
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Total < options[j].Total
	})

	comparison := entity.QuoteComparison{Options: options}
	if len(options) > 0 {
		cheapest := options[0]
		dearest := options[len(options)-1]
		comparison.Cheapest = cheapest.Company
		comparison.MostExpensive = dearest.Company
		if dearest.Total > 0 {
			comparison.Savings = round2(dearest.Total - cheapest.Total)
			comparison.SavingsPercent = round2(comparison.Savings / dearest.Total * 100)
		}
	}

	return comparison
}

// EstimateDistance is a keyword heuristic over the free-form city strings.
// Without a routing service the demo only needs the right order of
// magnitude: same city, regional, or cross-country.
func EstimateDistance(origin, destination string) int {
	if origin == "" || destination == "" {
		return 1800
	}

	from := strings.ToLower(origin)
	to := strings.ToLower(destination)

	if from == to {
		return 10
	}
	if sameState(from, to) {
		return 120
	}
	return 1800
}

func sameState(from, to string) bool {
	fs := trailingToken(from)
	ts := trailingToken(to)
	return fs != "" && fs == ts
}

// trailingToken pulls the state part out of "City, ST" style strings.
func trailingToken(s string) string {
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return ""
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
