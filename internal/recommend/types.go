package recommend

// Service is one recommended AWS service with the contextual reasoning shown
// to the user.
type Service struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Category       string `json:"category" yaml:"category"`
	TypicalMonthly string `json:"typical_monthly" yaml:"typical_monthly"`
	FreeTier       string `json:"free_tier" yaml:"free_tier"`
	WhyNeeded      string `json:"why_needed" yaml:"why_needed"`
	UseCaseExample string `json:"use_case_example" yaml:"use_case_example"`
}

// catalogEntry pairs a service key with its contextual description. Catalogs
// are ordered slices, not maps, so recommendations come out in a stable order.
type catalogEntry struct {
	key      string
	name     string
	category string
	why      string
	useCase  string
}
