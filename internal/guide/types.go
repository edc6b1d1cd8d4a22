package guide

// Document is the complete implementation guide. Every field is present on
// every document; sections that depend on the selected services vary in
// length, never in shape.
type Document struct {
	Format                 string            `json:"format" yaml:"format"`
	Sections               int               `json:"sections" yaml:"sections"`
	ProjectContext         ProjectContext    `json:"project_context" yaml:"project_context"`
	Introduction           Introduction      `json:"introduction" yaml:"introduction"`
	Prerequisites          []string          `json:"prerequisites" yaml:"prerequisites"`
	Architecture           Architecture      `json:"architecture" yaml:"architecture"`
	ServiceImplementations []ServiceDetail   `json:"service_implementations" yaml:"service_implementations"`
	ImplementationPhases   []Phase           `json:"implementation_phases" yaml:"implementation_phases"`
	BestPractices          []string          `json:"best_practices" yaml:"best_practices"`
	CostOptimization       []string          `json:"cost_optimization" yaml:"cost_optimization"`
	MonitoringSetup        []string          `json:"monitoring_setup" yaml:"monitoring_setup"`
	DeploymentChecklist    []string          `json:"deployment_checklist" yaml:"deployment_checklist"`
	Troubleshooting        map[string]string `json:"troubleshooting" yaml:"troubleshooting"`
	NextSteps              []string          `json:"next_steps" yaml:"next_steps"`
}

// ProjectContext summarizes the inputs the guide was built from.
type ProjectContext struct {
	Type           string `json:"type" yaml:"type"`
	EstimatedUsers int    `json:"estimated_users" yaml:"estimated_users"`
	ServicesCount  int    `json:"services_count" yaml:"services_count"`
	Complexity     string `json:"complexity" yaml:"complexity"`
}

// Introduction carries the headline numbers: timeline, difficulty, and the
// monthly cost band for the requested scale.
type Introduction struct {
	Title         string `json:"title" yaml:"title"`
	Overview      string `json:"overview" yaml:"overview"`
	Timeline      string `json:"timeline" yaml:"timeline"`
	Difficulty    string `json:"difficulty" yaml:"difficulty"`
	EstimatedCost string `json:"estimated_cost" yaml:"estimated_cost"`
	CostNote      string `json:"cost_note" yaml:"cost_note"`
}

// Architecture describes the overall pattern and echoes the service list.
type Architecture struct {
	Pattern       string   `json:"pattern" yaml:"pattern"`
	ServicesCount int      `json:"services_count" yaml:"services_count"`
	Scalability   string   `json:"scalability" yaml:"scalability"`
	Services      []string `json:"services" yaml:"services"`
}

// ServiceDetail is one entry of service_implementations: the configuration,
// setup command, and rationale for a single selected service.
type ServiceDetail struct {
	Service       string `json:"service" yaml:"service"`
	Configuration string `json:"configuration" yaml:"configuration"`
	SetupCommand  string `json:"setup_command" yaml:"setup_command"`
	Why           string `json:"why" yaml:"why"`
}

// Phase is one implementation phase. Numbers are sequential with no gaps,
// assigned in the order phases are appended.
type Phase struct {
	Number      int      `json:"number" yaml:"number"`
	Name        string   `json:"name" yaml:"name"`
	Duration    string   `json:"duration" yaml:"duration"`
	Description string   `json:"description" yaml:"description"`
	Steps       []string `json:"steps" yaml:"steps"`
}
