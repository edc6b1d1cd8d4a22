package guide

// Scale decisions all key off the same three boundaries. Keeping them in
// ordered tables means a boundary test only has to probe the row edges, and
// adding a band is a one-line change.
const (
	smallScale  = 1_000
	mediumScale = 10_000
	largeScale  = 100_000
)

// costBand maps a half-open user-count interval to a monthly price range.
// A row with upTo == 0 is the open-ended final band.
type costBand struct {
	upTo       int
	priceRange string
	note       string
}

var costBands = []costBand{
	{smallScale, "$0-25", "Mostly covered by AWS Free Tier"},
	{mediumScale, "$25-100", "Some Free Tier benefits still apply"},
	{largeScale, "$100-500", "Production-grade costs"},
	{0, "$500-2000", "Consider Savings Plans and reserved capacity at this scale"},
}

// CostBand returns the monthly price range and explanatory note for a user
// count. Exported because the IaC README reuses the same bands.
func CostBand(users int) (priceRange, note string) {
	for _, b := range costBands {
		if b.upTo == 0 || users < b.upTo {
			return b.priceRange, b.note
		}
	}
	last := costBands[len(costBands)-1]
	return last.priceRange, last.note
}

// lambdaTier holds the memory/timeout pairing for a user-count band.
type lambdaTier struct {
	upTo       int
	memoryMB   int
	timeoutSec int
}

var lambdaTiers = []lambdaTier{
	{smallScale, 256, 10},
	{mediumScale, 512, 30},
	{0, 1024, 60},
}

// LambdaTier returns the Lambda memory size and timeout for a user count.
func LambdaTier(users int) (memoryMB, timeoutSec int) {
	for _, t := range lambdaTiers {
		if t.upTo == 0 || users < t.upTo {
			return t.memoryMB, t.timeoutSec
		}
	}
	last := lambdaTiers[len(lambdaTiers)-1]
	return last.memoryMB, last.timeoutSec
}

// difficultyWeights are accumulated per selected service by substring match.
// A service name matching several keywords contributes every matching weight.
var difficultyWeights = []struct {
	keyword string
	weight  int
}{
	{"cognito", 2},
	{"dynamodb", 1},
	{"rds", 3},
}

func difficultyScore(services []string) int {
	score := 0
	for _, s := range services {
		lower := lowerName(s)
		for _, w := range difficultyWeights {
			if containsKeyword(lower, w.keyword) {
				score += w.weight
			}
		}
	}
	return score
}

func difficultyLabel(score int) string {
	switch {
	case score < 2:
		return "Beginner"
	case score < 4:
		return "Intermediate"
	default:
		return "Advanced"
	}
}
