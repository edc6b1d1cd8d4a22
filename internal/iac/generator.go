// Package iac renders Terraform configuration for a recommended service set.
// Output is a file map plus deployment instructions; nothing is written to
// disk or sent to AWS.
package iac

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"counsel/internal/classify"
	"counsel/internal/guide"
	"counsel/internal/recommend"
)

// Bundle is a generated Terraform configuration.
type Bundle struct {
	Format       string            `json:"format" yaml:"format"`
	Files        map[string]string `json:"files" yaml:"files"`
	Instructions []string          `json:"instructions" yaml:"instructions"`
}

var numPrinter = message.NewPrinter(language.English)

// Generate renders Terraform for the recommended services. Resource blocks
// are matched on the lowercased service name, in recommendation order. The
// Lambda size and DynamoDB billing mode follow the same user-count bands as
// the implementation guide.
func Generate(services []recommend.Service, classification classify.Classification, estimatedUsers int) Bundle {
	projectType := classification.Primary
	if projectType == "" {
		projectType = "application"
	}

	var resources []string
	for _, svc := range services {
		lower := strings.ToLower(svc.Name)
		switch {
		case strings.Contains(lower, "lambda"):
			resources = append(resources, lambdaResource(estimatedUsers))
		case strings.Contains(lower, "dynamodb"):
			resources = append(resources, dynamoResource(estimatedUsers))
		case strings.Contains(lower, "s3"):
			resources = append(resources, s3Resource())
		case strings.Contains(lower, "cognito"):
			resources = append(resources, cognitoResource())
		case strings.Contains(lower, "api gateway"):
			resources = append(resources, apiGatewayResource())
		}
	}

	return Bundle{
		Format: "terraform",
		Files: map[string]string{
			"main.tf":      mainTF(projectType, estimatedUsers) + "\n\n" + strings.Join(resources, "\n\n"),
			"variables.tf": variablesTF(projectType),
			"outputs.tf":   outputsTF,
			"README.md":    readme(estimatedUsers),
		},
		Instructions: []string{
			"1. Install Terraform",
			"2. Run: terraform init",
			"3. Run: terraform plan",
			"4. Run: terraform apply",
		},
	}
}

func mainTF(projectType string, users int) string {
	return numPrinter.Sprintf(`# Terraform configuration for %s
# Estimated users: %d

terraform {
  required_version = ">= 1.0"
  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = "~> 5.0"
    }
  }
}

provider "aws" {
  region = var.aws_region
  default_tags {
    tags = {
      Project     = %q
      Environment = var.environment
      ManagedBy   = "Terraform"
    }
  }
}
`, projectType, users, projectType)
}

func variablesTF(projectType string) string {
	return fmt.Sprintf(`variable "aws_region" {
  description = "AWS region"
  type        = string
  default     = "us-east-1"
}

variable "environment" {
  description = "Environment name"
  type        = string
  default     = "prod"
}

variable "project_name" {
  description = "Project name"
  type        = string
  default     = %q
}
`, projectType)
}

const outputsTF = `output "api_endpoint" {
  description = "API Gateway URL"
  value       = try(aws_api_gateway_deployment.main.invoke_url, "N/A")
}

output "lambda_function" {
  description = "Lambda function name"
  value       = try(aws_lambda_function.api.function_name, "N/A")
}
`

func readme(users int) string {
	priceRange, _ := guide.CostBand(users)
	return numPrinter.Sprintf(`# Terraform Deployment

## Prerequisites
- Install Terraform: https://www.terraform.io/downloads
- Configure AWS: aws configure

## Deploy

1. Initialize:
   terraform init

2. Plan:
   terraform plan

3. Apply:
   terraform apply

4. Get outputs:
   terraform output

## Cost
Estimated: %s/month for %d users

## Cleanup
terraform destroy
`, priceRange, users)
}

func lambdaResource(users int) string {
	memory, timeout := guide.LambdaTier(users)
	return fmt.Sprintf(`resource "aws_lambda_function" "api" {
  filename      = "lambda.zip"
  function_name = "${var.project_name}-api"
  role          = aws_iam_role.lambda.arn
  handler       = "index.handler"
  runtime       = "python3.11"
  memory_size   = %d
  timeout       = %d
}

resource "aws_iam_role" "lambda" {
  name = "${var.project_name}-lambda-role"
  assume_role_policy = jsonencode({
    Version = "2012-10-17"
    Statement = [{
      Action = "sts:AssumeRole"
      Effect = "Allow"
      Principal = { Service = "lambda.amazonaws.com" }
    }]
  })
}`, memory, timeout)
}

func dynamoResource(users int) string {
	billing := "PAY_PER_REQUEST"
	if users >= 10_000 {
		billing = "PROVISIONED"
	}
	return fmt.Sprintf(`resource "aws_dynamodb_table" "main" {
  name         = "${var.project_name}-data"
  billing_mode = %q
  hash_key     = "pk"
  range_key    = "sk"

  attribute {
    name = "pk"
    type = "S"
  }
  attribute {
    name = "sk"
    type = "S"
  }

  server_side_encryption {
    enabled = true
  }
}`, billing)
}

func s3Resource() string {
	return `resource "aws_s3_bucket" "main" {
  bucket = "${var.project_name}-storage"
}

resource "aws_s3_bucket_versioning" "main" {
  bucket = aws_s3_bucket.main.id
  versioning_configuration {
    status = "Enabled"
  }
}`
}

func cognitoResource() string {
	return `resource "aws_cognito_user_pool" "main" {
  name = "${var.project_name}-users"

  password_policy {
    minimum_length    = 8
    require_lowercase = true
    require_uppercase = true
    require_numbers   = true
  }
}`
}

func apiGatewayResource() string {
	return `resource "aws_api_gateway_rest_api" "main" {
  name = "${var.project_name}-api"
}

resource "aws_api_gateway_deployment" "main" {
  rest_api_id = aws_api_gateway_rest_api.main.id
  stage_name  = var.environment
}`
}
