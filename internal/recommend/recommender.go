// Package recommend maps a classified project description to a set of AWS
// services, each annotated with contextual reasoning, a scale-adjusted cost
// range, and free-tier limits.
package recommend

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"counsel/internal/classify"
)

var countPrinter = message.NewPrinter(language.English)

// Recommend picks services for the classified project. The primary project
// type chooses the catalog; secondary detected features contribute any of
// their services not already present; above 10k users CloudFront is injected
// when no catalog supplied it.
func Recommend(classification classify.Classification, estimatedUsers int) []Service {
	catalog, ok := projectCatalogs[classification.Primary]
	if !ok {
		catalog = defaultCatalog
	}

	entries := make([]catalogEntry, 0, len(catalog)+4)
	seen := make(map[string]bool, len(catalog)+4)
	for _, e := range catalog {
		entries = append(entries, e)
		seen[e.key] = true
	}

	for _, feature := range classification.Features {
		if feature == classification.Primary {
			continue
		}
		for _, e := range projectCatalogs[feature] {
			if seen[e.key] {
				continue
			}
			entries = append(entries, e)
			seen[e.key] = true
		}
	}

	if estimatedUsers > 10_000 && !seen["cloudfront"] {
		entries = append(entries, catalogEntry{
			key:      "cloudfront",
			name:     "Amazon CloudFront",
			category: "cdn",
			why: countPrinter.Sprintf("Essential for %d users - delivers content globally with low latency",
				estimatedUsers),
			useCase: "Global CDN, caching, DDoS protection",
		})
	}

	services := make([]Service, 0, len(entries))
	for _, e := range entries {
		services = append(services, Service{
			ID:             e.key,
			Name:           e.name,
			Category:       e.category,
			TypicalMonthly: CostEstimate(e.key, estimatedUsers),
			FreeTier:       FreeTier(e.key),
			WhyNeeded:      e.why,
			UseCaseExample: e.useCase,
		})
	}
	return services
}

// CostEstimate returns the monthly dollar range for a service, scaled by the
// expected user count.
func CostEstimate(serviceKey string, users int) string {
	var multiplier float64
	switch {
	case users < 1_000:
		multiplier = 0.5
	case users < 10_000:
		multiplier = 1.0
	case users < 100_000:
		multiplier = 2.0
	default:
		multiplier = 4.0
	}

	base, ok := baseCosts[serviceKey]
	if !ok {
		return "5-30"
	}
	return fmt.Sprintf("%d-%d", int(float64(base[0])*multiplier), int(float64(base[1])*multiplier))
}

// FreeTier returns the service's free-tier allowance.
func FreeTier(serviceKey string) string {
	if tier, ok := freeTiers[serviceKey]; ok {
		return tier
	}
	return "Limited free tier"
}
