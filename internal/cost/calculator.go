// Package cost estimates monthly AWS spend for a set of recommended services.
// Estimates come from a static per-service range table; no billing API is
// involved.
package cost

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceEstimate is the static pricing record for one service.
type ServiceEstimate struct {
	Name           string `json:"name" yaml:"name"`
	Category       string `json:"category" yaml:"category"`
	TypicalMonthly string `json:"typical_monthly" yaml:"typical_monthly"`
	FreeTier       string `json:"free_tier" yaml:"free_tier"`
}

// Summary totals the per-service ranges.
type Summary struct {
	FreeTierViable bool   `json:"free_tier_viable" yaml:"free_tier_viable"`
	Minimum        string `json:"minimum" yaml:"minimum"`
	Typical        string `json:"typical" yaml:"typical"`
	Maximum        string `json:"maximum" yaml:"maximum"`
}

// Analysis is the full cost result for an analysis request.
type Analysis struct {
	Summary   Summary           `json:"summary" yaml:"summary"`
	Breakdown map[string]string `json:"breakdown" yaml:"breakdown"`
}

var serviceEstimates = map[string]ServiceEstimate{
	"lambda": {
		Name:           "AWS Lambda",
		Category:       "compute",
		TypicalMonthly: "10-50",
		FreeTier:       "1M requests + 400K GB-seconds",
	},
	"dynamodb": {
		Name:           "Amazon DynamoDB",
		Category:       "database",
		TypicalMonthly: "5-30",
		FreeTier:       "25GB + 25 WCU/RCU",
	},
	"s3": {
		Name:           "Amazon S3",
		Category:       "storage",
		TypicalMonthly: "5-20",
		FreeTier:       "5GB storage",
	},
	"cognito": {
		Name:           "Amazon Cognito",
		Category:       "authentication",
		TypicalMonthly: "0-25",
		FreeTier:       "50K MAU",
	},
	"api-gateway": {
		Name:           "Amazon API Gateway",
		Category:       "api",
		TypicalMonthly: "5-30",
		FreeTier:       "1M requests (12 months)",
	},
}

var two = decimal.NewFromInt(2)

// Calculate sums the typical monthly range of every known service in the
// list. Unknown service ids are skipped. The typical figure is the midpoint
// of the summed range.
func Calculate(serviceIDs []string, users int) Analysis {
	totalMin := decimal.Zero
	totalMax := decimal.Zero
	breakdown := make(map[string]string, len(serviceIDs))

	for _, id := range serviceIDs {
		est, ok := serviceEstimates[id]
		if !ok {
			continue
		}
		min, max := parseRange(est.TypicalMonthly)
		totalMin = totalMin.Add(min)
		totalMax = totalMax.Add(max)
		breakdown[est.Name] = "$" + min.String() + "-" + max.String()
	}

	typical := totalMin.Add(totalMax).Div(two)

	return Analysis{
		Summary: Summary{
			FreeTierViable: true,
			Minimum:        "$" + totalMin.Round(0).String(),
			Typical:        "$" + typical.Round(0).String(),
			Maximum:        "$" + totalMax.Round(0).String(),
		},
		Breakdown: breakdown,
	}
}

// Estimate returns the static pricing record for a service id.
func Estimate(serviceID string) (ServiceEstimate, bool) {
	est, ok := serviceEstimates[serviceID]
	return est, ok
}

// parseRange splits "10-50" into its bounds. A single number doubles for the
// upper bound.
func parseRange(typical string) (decimal.Decimal, decimal.Decimal) {
	parts := strings.SplitN(typical, "-", 2)
	min, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero, decimal.Zero
	}
	if len(parts) == 1 {
		return min, min.Mul(two)
	}
	max, err := decimal.NewFromString(parts[1])
	if err != nil {
		return min, min.Mul(two)
	}
	return min, max
}
