package guide

import (
	"fmt"
	"strings"
)

// serviceKeywords is the ordered lookup table for the per-service detail
// block. The first keyword contained in the normalized name wins; names
// matching none of them get the generic fallback record.
var serviceKeywords = []string{"lambda", "dynamodb", "s3", "cognito", "apigateway"}

// normalizeServiceName lower-cases a service name and strips the common
// provider prefixes so "AWS Lambda" and "lambda" classify identically.
func normalizeServiceName(name string) string {
	lower := strings.ToLower(name)
	lower = strings.TrimPrefix(lower, "amazon ")
	lower = strings.TrimPrefix(lower, "aws ")
	return lower
}

// ServiceDetailFor builds the detail record for one selected service. It
// always returns a well-formed record; unknown services get generic text.
func ServiceDetailFor(service string, users int, projectType string) ServiceDetail {
	normalized := normalizeServiceName(service)

	for _, keyword := range serviceKeywords {
		if !strings.Contains(normalized, keyword) {
			continue
		}
		switch keyword {
		case "lambda":
			return lambdaDetail(service, users, projectType)
		case "dynamodb":
			return dynamoDetail(service, users, projectType)
		case "s3":
			return s3Detail(service, users, projectType)
		case "cognito":
			return cognitoDetail(service, projectType)
		case "apigateway":
			return apiGatewayDetail(service, projectType)
		}
	}

	return ServiceDetail{
		Service:       service,
		Configuration: "Standard configuration",
		SetupCommand:  "See AWS documentation for setup steps",
		Why:           "Supports your application workload",
	}
}

func lambdaDetail(service string, users int, projectType string) ServiceDetail {
	memory, timeout := LambdaTier(users)
	concurrency := users / 100
	if concurrency < 10 {
		concurrency = 10
	}
	return ServiceDetail{
		Service:       service,
		Configuration: fmt.Sprintf("Memory: %dMB, Timeout: %ds, Concurrency: %d", memory, timeout, concurrency),
		SetupCommand: fmt.Sprintf(
			"aws lambda create-function --function-name %s-api --runtime python3.11 --memory-size %d --timeout %d",
			projectType, memory, timeout),
		Why: "Serverless compute that scales automatically and bills per millisecond of execution",
	}
}

func dynamoDetail(service string, users int, projectType string) ServiceDetail {
	billing := "on-demand"
	billingFlag := "PAY_PER_REQUEST"
	if users >= mediumScale {
		billing = "provisioned"
		billingFlag = "PROVISIONED"
	}
	return ServiceDetail{
		Service:       service,
		Configuration: fmt.Sprintf("Billing: %s, Encryption: enabled, Point-in-time recovery: enabled", billing),
		SetupCommand: fmt.Sprintf(
			"aws dynamodb create-table --table-name %s-data --billing-mode %s --attribute-definitions AttributeName=pk,AttributeType=S --key-schema AttributeName=pk,KeyType=HASH",
			projectType, billingFlag),
		Why: "Single-digit millisecond reads and writes at any scale without capacity management",
	}
}

func s3Detail(service string, users int, projectType string) ServiceDetail {
	lifecycle := "Transition to S3-IA after 90 days"
	if users >= mediumScale {
		lifecycle = "Intelligent-Tiering for all objects"
	}
	return ServiceDetail{
		Service:       service,
		Configuration: fmt.Sprintf("Versioning: enabled, Lifecycle: %s", lifecycle),
		SetupCommand:  fmt.Sprintf("aws s3 mb s3://%s-storage --region us-east-1", projectType),
		Why:           "Durable object storage for uploads, static assets, and backups",
	}
}

func cognitoDetail(service, projectType string) ServiceDetail {
	return ServiceDetail{
		Service:       service,
		Configuration: "MFA: optional TOTP, Password policy: 8+ chars with upper, lower, and numbers",
		SetupCommand:  fmt.Sprintf("aws cognito-idp create-user-pool --pool-name %s-users --auto-verified-attributes email", projectType),
		Why:           "Managed sign-up, sign-in, and token issuance without building auth yourself",
	}
}

func apiGatewayDetail(service, projectType string) ServiceDetail {
	return ServiceDetail{
		Service:       service,
		Configuration: "Type: REST, Stage: prod, CORS: enabled, Throttling: default burst",
		SetupCommand:  fmt.Sprintf("aws apigateway create-rest-api --name %s-api --endpoint-configuration types=REGIONAL", projectType),
		Why:           "Fronts your Lambda functions with throttling, API keys, and request validation",
	}
}
