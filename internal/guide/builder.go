// Package guide builds a personalized AWS implementation guide from a
// service selection, a project classification, and an estimated user count.
// Generation is a pure function of its inputs: no I/O, no clock, no state.
package guide

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"counsel/internal/classify"
)

const defaultProjectType = "application"

// fixedSections is added to the service count for the documentary sections
// field; it is metadata, not a structural guarantee.
const fixedSections = 6

var (
	titleCaser = cases.Title(language.English)
	numPrinter = message.NewPrinter(language.English)
)

// Generate assembles the full guide document. It always succeeds: unknown
// services fall back to generic detail records and a missing project type
// falls back to "application".
func Generate(services []string, classification classify.Classification, estimatedUsers int) Document {
	projectType := classification.Primary
	if projectType == "" {
		projectType = defaultProjectType
	}

	serviceCount := len(services)
	totalHours := 15 + serviceCount*5
	days := totalHours / 8
	if days < 3 {
		days = 3
	}

	difficulty := difficultyLabel(difficultyScore(services))
	priceRange, costNote := CostBand(estimatedUsers)

	implementations := make([]ServiceDetail, 0, serviceCount)
	for _, service := range services {
		implementations = append(implementations, ServiceDetailFor(service, estimatedUsers, projectType))
	}

	pattern := "Traditional"
	if hasService(services, "lambda") {
		pattern = "Serverless"
	}

	usersFormatted := numPrinter.Sprintf("%d", estimatedUsers)

	testUsers := estimatedUsers / 10
	if testUsers > 100 {
		testUsers = 100
	}

	return Document{
		Format:   "dynamic_personalized",
		Sections: serviceCount + fixedSections,
		ProjectContext: ProjectContext{
			Type:           projectType,
			EstimatedUsers: estimatedUsers,
			ServicesCount:  serviceCount,
			Complexity:     difficulty,
		},
		Introduction: Introduction{
			Title: fmt.Sprintf("Building Your %s Platform on AWS", titleCaser.String(projectType)),
			Overview: fmt.Sprintf(
				"Personalized implementation guide for a %s application serving %s users using %d AWS services.",
				projectType, usersFormatted, serviceCount),
			Timeline:      fmt.Sprintf("%d-%d hours over %d-%d days", totalHours, totalHours+10, days, days+2),
			Difficulty:    difficulty,
			EstimatedCost: priceRange + "/month",
			CostNote:      costNote,
		},
		Prerequisites: prerequisites(services, estimatedUsers),
		Architecture: Architecture{
			Pattern:       pattern,
			ServicesCount: serviceCount,
			Scalability:   fmt.Sprintf("Designed for %s users", usersFormatted),
			Services:      services,
		},
		ServiceImplementations: implementations,
		ImplementationPhases:   implementationPhases(services, estimatedUsers),
		BestPractices:          bestPractices(services),
		CostOptimization:       costTips(services, estimatedUsers),
		MonitoringSetup:        monitoringSetup(services, estimatedUsers),
		DeploymentChecklist:    deploymentChecklist(services, estimatedUsers),
		Troubleshooting:        troubleshooting(services),
		NextSteps: []string{
			fmt.Sprintf("1. Set up AWS account with budget alert for %s", priceRange),
			"2. Review prerequisites and gather tools",
			"3. Follow implementation phases in order",
			fmt.Sprintf("4. Test with %d concurrent users", testUsers),
			"5. Monitor CloudWatch metrics closely",
			"6. Scale gradually based on actual usage",
		},
	}
}
