package guide

import "strings"

// The section helpers below are independent of each other: each takes the
// service list (and sometimes the user count) and appends conditional lines
// to a fixed base. Membership tests are case-insensitive substring checks
// against each service name.

func lowerName(s string) string {
	return strings.ToLower(s)
}

func containsKeyword(lowered, keyword string) bool {
	return strings.Contains(lowered, keyword)
}

func hasService(services []string, keyword string) bool {
	for _, s := range services {
		if containsKeyword(lowerName(s), keyword) {
			return true
		}
	}
	return false
}

func prerequisites(services []string, users int) []string {
	items := []string{
		"AWS account with admin access",
		"AWS CLI installed and configured",
		"Basic knowledge of cloud architecture",
		"Text editor or IDE",
		"Git for version control",
	}
	if hasService(services, "lambda") {
		items = append(items, "AWS SAM CLI for local Lambda testing")
	}
	if hasService(services, "cognito") {
		items = append(items, "Familiarity with OAuth 2.0 and JWT tokens")
	}
	if users >= mediumScale {
		items = append(items, "Load testing tool such as Artillery or k6")
	}
	if users >= largeScale {
		items = append(items, "Review AWS service quotas before launch")
	}
	return items
}

func implementationPhases(services []string, users int) []Phase {
	var phases []Phase
	appendPhase := func(name, duration, description string, steps []string) {
		phases = append(phases, Phase{
			Number:      len(phases) + 1,
			Name:        name,
			Duration:    duration,
			Description: description,
			Steps:       steps,
		})
	}

	appendPhase("Foundation Setup", "2-3 hours", "Set up AWS account and basic infrastructure", []string{
		"Create AWS account or use existing",
		"Set up IAM users with MFA",
		"Configure AWS CLI",
		"Set up billing alerts",
	})

	if hasService(services, "dynamodb") || hasService(services, "rds") {
		appendPhase("Database Setup", "2-4 hours", "Create tables and configure backups", []string{
			"Design the data model",
			"Create tables with encryption enabled",
			"Enable point-in-time recovery",
			"Verify reads and writes from the CLI",
		})
	}

	if hasService(services, "lambda") {
		appendPhase("API Development", "4-8 hours", "Implement business logic and endpoints", []string{
			"Create Lambda functions",
			"Set up environment variables",
			"Configure IAM roles",
			"Wire endpoints and test locally",
		})
	}

	if hasService(services, "cognito") {
		appendPhase("Authentication", "2-3 hours", "Set up user sign-up and sign-in", []string{
			"Create Cognito user pool",
			"Configure password policy and MFA",
			"Integrate token validation in the API",
		})
	}

	testingDuration := "2-4 hours"
	if users >= mediumScale {
		testingDuration = "4-8 hours"
	}
	appendPhase("Testing & QA", testingDuration, "Test all services end-to-end", []string{
		"Test API endpoints",
		"Test error handling paths",
		"Verify CloudWatch logging",
		"Run a load test at expected traffic",
	})

	appendPhase("Deployment", "2-3 hours", "Deploy to production environment", []string{
		"Deploy via CI/CD pipeline",
		"Run smoke tests",
		"Configure monitoring dashboards",
		"Monitor for 24 hours",
	})

	return phases
}

func bestPractices(services []string) []string {
	items := []string{
		"Enable MFA on the root account and create named IAM users",
		"Use infrastructure as code from day one",
		"Keep secrets in AWS Secrets Manager, never in code",
	}
	if hasService(services, "lambda") {
		items = append(items, "Keep Lambda packages under 50MB to reduce cold starts")
	}
	if hasService(services, "dynamodb") {
		items = append(items, "Choose DynamoDB partition keys carefully, they cannot be changed later")
	}
	if hasService(services, "s3") {
		items = append(items, "Block public access on S3 buckets unless serving a static site")
	}
	if hasService(services, "cognito") {
		items = append(items, "Enable compromised credential detection in Cognito")
	}
	return items
}

func costTips(services []string, users int) []string {
	var tips []string
	if users < mediumScale {
		tips = append(tips,
			"Stay within AWS Free Tier limits where possible",
			"Use on-demand billing so you only pay for actual usage")
	} else {
		tips = append(tips,
			"Buy Savings Plans for steady Lambda workloads",
			"Switch DynamoDB to provisioned capacity with auto-scaling")
	}
	if hasService(services, "s3") {
		tips = append(tips, "Enable S3 lifecycle policies to move old objects to cheaper storage")
	}
	tips = append(tips,
		"Set up CloudWatch billing alarms at 50%, 80%, and 100% of budget",
		"Tag every resource with Environment and CostCenter",
		"Review Cost Explorer weekly for the first three months")
	return tips
}

func monitoringSetup(services []string, users int) []string {
	alarms := []string{
		"Billing alarm at your monthly budget threshold",
	}
	if hasService(services, "lambda") {
		alarms = append(alarms,
			"Lambda error rate alarm (threshold: 1%)",
			"Lambda duration alarm at 80% of the configured timeout")
	}
	if hasService(services, "dynamodb") {
		alarms = append(alarms, "DynamoDB throttled request alarm")
	}
	if users >= mediumScale {
		alarms = append(alarms, "API 5xx error rate alarm")
	}
	return alarms
}

func deploymentChecklist(services []string, users int) []string {
	items := []string{
		"Run end-to-end tests against a staging environment",
		"Verify IAM roles follow least privilege",
		"Enable CloudWatch logging on every service",
		"Confirm billing alarms are active",
		"Document the rollback procedure",
	}
	if users >= mediumScale {
		items = append(items,
			"Configure auto-scaling policies",
			"Enable multi-AZ where supported")
	}
	if hasService(services, "s3") {
		items = append(items, "Enable S3 bucket versioning")
	}
	return items
}

func troubleshooting(services []string) map[string]string {
	tips := map[string]string{
		"general": "Check CloudWatch Logs first. Enable X-Ray for tracing.",
	}
	if hasService(services, "lambda") {
		tips["lambda_timeout"] = "Increase timeout or optimize code"
		tips["lambda_errors"] = "Check CloudWatch Logs for stack traces"
	}
	if hasService(services, "dynamodb") {
		tips["dynamodb_throttling"] = "Increase capacity or enable auto-scaling"
	}
	if hasService(services, "apigateway") {
		tips["api_502"] = "Check Lambda integration and permissions"
	}
	return tips
}
