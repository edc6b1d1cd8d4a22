// Package classify scores a free-form project description against a fixed
// use-case lexicon to decide what kind of application is being built.
package classify

import (
	"sort"
	"strings"
)

const fallbackCategory = "web_application"

// Classify picks the primary project type and supporting features for a
// description. An unrecognizable description falls back to web_application
// at half confidence rather than failing.
func Classify(description string) Classification {
	lower := strings.ToLower(description)

	type categoryScore struct {
		category string
		score    int
	}

	var scored []categoryScore
	for _, category := range categoryOrder {
		score := 0
		for _, keyword := range useCaseKeywords[category] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, categoryScore{category, score})
		}
	}

	if len(scored) == 0 {
		return Classification{
			Primary:    fallbackCategory,
			Confidence: 0.5,
			Features:   []string{fallbackCategory},
		}
	}

	// Stable sort keeps lexicon order as the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	primary := scored[0].category
	maxScore := scored[0].score

	confidence := float64(maxScore) / 5.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	if len(scored) > 1 && float64(scored[1].score) >= float64(maxScore)*0.7 {
		confidence *= 0.9
	}

	features := make([]string, 0, 4)
	for i, cs := range scored {
		if i >= 4 {
			break
		}
		features = append(features, cs.category)
	}

	return Classification{
		Primary:    primary,
		Confidence: confidence,
		Features:   features,
	}
}
