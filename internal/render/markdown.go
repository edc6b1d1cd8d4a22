// Package render turns an analysis result into a markdown narrative suitable
// for terminal display or an API response.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"counsel/internal/classify"
	"counsel/internal/cost"
	"counsel/internal/guide"
	"counsel/internal/recommend"
)

var numPrinter = message.NewPrinter(language.English)

type projectProfile struct {
	title       string
	description string
	impact      string
	conclusion  string
}

var projectProfiles = map[string]projectProfile{
	"ecommerce": {
		title:       "E-Commerce Platform",
		description: "an e-commerce platform requiring secure payment processing, real-time inventory management, and scalable user authentication",
		impact:      "This architecture enables you to handle transactions securely, manage product catalogs efficiently, and scale seamlessly as your customer base grows.",
		conclusion:  "With this architecture in place, you have a production-ready e-commerce platform that can scale from your first customer to millions. The serverless approach means you pay only for actual usage.",
	},
	"api": {
		title:       "API Service",
		description: "a RESTful API service requiring high availability, efficient data access, and comprehensive API management",
		impact:      "This architecture provides enterprise-grade API capabilities with built-in throttling, caching, and monitoring.",
		conclusion:  "This API architecture provides authentication, throttling, monitoring, and scaling without the operational burden of managing servers.",
	},
	"social": {
		title:       "Social Media Platform",
		description: "a social networking application with real-time interactions, media storage, and complex user relationship management",
		impact:      "This architecture supports viral growth with auto-scaling capabilities and global content delivery.",
		conclusion:  "You have a social platform foundation that can handle viral growth. Users worldwide will have a fast, responsive experience even during traffic spikes.",
	},
	"saas": {
		title:       "SaaS Application",
		description: "a multi-tenant SaaS solution requiring secure data isolation, subscription management, and reliable infrastructure",
		impact:      "This architecture ensures tenant isolation and the ability to onboard new customers instantly without infrastructure changes.",
		conclusion:  "This SaaS architecture keeps every customer's data isolated and secure while letting you operate a single infrastructure.",
	},
	"web_application": {
		title:       "Web Application",
		description: "a cloud-based web application requiring scalable infrastructure and reliable performance",
		impact:      "This architecture provides a solid foundation with automatic scaling, high availability, and cost optimization built in from day one.",
		conclusion:  "Your web application now runs on infrastructure that scales automatically and costs pennies when idle.",
	},
}

// Markdown renders the full analysis as a markdown narrative.
func Markdown(doc guide.Document, classification classify.Classification, services []recommend.Service, analysis cost.Analysis, estimatedUsers int) string {
	var sb strings.Builder

	writeExecutiveSummary(&sb, classification, estimatedUsers)
	writeArchitecture(&sb, services, classification.Primary, estimatedUsers)
	writeCosts(&sb, analysis, estimatedUsers)
	writeRoadmap(&sb, doc)
	writeBestPractices(&sb, doc)
	writeConclusion(&sb, classification.Primary)

	return sb.String()
}

func profileFor(projectType string) projectProfile {
	if p, ok := projectProfiles[projectType]; ok {
		return p
	}
	return projectProfiles["web_application"]
}

func writeExecutiveSummary(sb *strings.Builder, c classify.Classification, users int) {
	p := profileFor(c.Primary)

	scale := "Small Scale"
	switch {
	case users >= 50_000:
		scale = "Large Scale"
	case users >= 1_000:
		scale = "Medium Scale"
	}

	confidenceText := "reasonably sure"
	switch {
	case c.Confidence > 0.8:
		confidenceText = "highly confident"
	case c.Confidence > 0.6:
		confidenceText = "confident"
	}

	sb.WriteString("# Executive Summary\n\n")
	fmt.Fprintf(sb, "- **Project Type:** %s\n", p.title)
	numPrinter.Fprintf(sb, "- **Scale:** %s (%d users)\n", scale, users)
	fmt.Fprintf(sb, "- **Confidence:** %.0f%%\n\n", c.Confidence*100)

	fmt.Fprintf(sb, "Based on the analysis of your project description, I'm **%s** that you're building %s.\n\n",
		confidenceText, p.description)

	if len(c.Features) > 0 {
		limit := len(c.Features)
		if limit > 5 {
			limit = 5
		}
		fmt.Fprintf(sb, "Key features identified: **%s**. These directly influenced the service recommendations and architecture decisions.\n\n",
			strings.Join(c.Features[:limit], ", "))
	}

	numPrinter.Fprintf(sb, "Your architecture is designed to support **%d concurrent users** efficiently. %s\n\n",
		users, p.impact)

	sb.WriteString("The recommendation follows the **AWS Well-Architected Framework** across all five pillars: " +
		"Operational Excellence, Security, Reliability, Performance Efficiency, and Cost Optimization.\n\n")
}

func writeArchitecture(sb *strings.Builder, services []recommend.Service, projectType string, users int) {
	intros := map[string]string{
		"ecommerce":       "For an e-commerce platform, reliability and security are paramount. Every service here was selected so your customers get a seamless shopping experience while their payment information stays secure.",
		"api":             "For an API service, performance and scalability are critical. This architecture handles high request volumes with low latency and ships with the monitoring and security features production needs.",
		"social":          "For a social platform, real-time capabilities and media handling are crucial. This architecture supports viral growth and global reach.",
		"saas":            "For a SaaS application, multi-tenancy and data isolation are fundamental. Each customer's data remains secure while you scale efficiently.",
		"web_application": "For your web application, the focus is a scalable, maintainable foundation that can grow with your needs.",
	}
	intro, ok := intros[projectType]
	if !ok {
		intro = intros["web_application"]
	}

	sb.WriteString("# Architecture Deep Dive\n\n")
	sb.WriteString(intro + "\n\n")
	sb.WriteString("**Architectural philosophy:** this design is serverless-first to minimize operational overhead. " +
		"No servers to manage, no operating systems to patch, no capacity planning.\n\n")

	for i, svc := range services {
		fmt.Fprintf(sb, "## %d. %s\n\n", i+1, svc.Name)
		fmt.Fprintf(sb, "*Category: %s*\n\n", svc.Category)
		fmt.Fprintf(sb, "**Why %s?** %s\n\n", svc.Name, svc.WhyNeeded)
		if svc.UseCaseExample != "" {
			fmt.Fprintf(sb, "**In your application:** %s\n\n", svc.UseCaseExample)
		}
		numPrinter.Fprintf(sb, "**Estimated cost:** $%s/month based on %d users with typical usage patterns. Free tier: %s.\n\n",
			svc.TypicalMonthly, users, svc.FreeTier)
	}

	sb.WriteString("## How These Services Work Together\n\n")
	sb.WriteString("Your architecture follows a layered approach:\n\n")
	sb.WriteString("- **Entry Layer:** API Gateway receives all requests and handles authentication\n")
	sb.WriteString("- **Compute Layer:** Lambda functions process business logic without server management\n")
	sb.WriteString("- **Data Layer:** DynamoDB stores your data with automatic scaling\n")
	sb.WriteString("- **Storage Layer:** S3 holds static assets and files with 99.999999999% durability\n")
	sb.WriteString("- **Observability Layer:** CloudWatch monitors everything in real time\n\n")
	sb.WriteString("Each layer scales independently based on demand, which keeps the application easier to maintain, debug, and scale.\n\n")
}

func writeCosts(sb *strings.Builder, analysis cost.Analysis, users int) {
	sb.WriteString("# Cost Analysis\n\n")
	numPrinter.Fprintf(sb, "Based on **%d active users** with typical usage patterns, here is your projected monthly spend:\n\n", users)
	fmt.Fprintf(sb, "| Minimum | Most Likely | Peak |\n|---|---|---|\n| %s | %s | %s |\n\n",
		analysis.Summary.Minimum, analysis.Summary.Typical, analysis.Summary.Maximum)

	sb.WriteString("**Why the range?** AWS bills on actual usage. The minimum covers low-traffic periods, " +
		"the typical figure normal operations, and the peak reflects traffic spikes or seasonal highs.\n\n")

	if analysis.Summary.FreeTierViable {
		sb.WriteString("## Free Tier Opportunity\n\n")
		sb.WriteString("If you're just starting out, the AWS Free Tier can significantly reduce or eliminate costs for the first 12 months:\n\n")
		sb.WriteString("- **Lambda:** 1M free requests and 400,000 GB-seconds of compute per month\n")
		sb.WriteString("- **DynamoDB:** 25 GB storage and 25 WCU/RCU\n")
		sb.WriteString("- **S3:** 5 GB storage, 20,000 GET requests, 2,000 PUT requests\n")
		sb.WriteString("- **API Gateway:** 1M API calls per month\n")
		sb.WriteString("- **CloudFront:** 1 TB data transfer out and 10M requests\n\n")
	}

	sb.WriteString("## Cost Optimization Strategies\n\n")
	sb.WriteString("1. Set up billing alerts at 50%, 80%, and 100% of your monthly budget\n")
	sb.WriteString("2. Enable AWS Cost Explorer and review spending weekly during the first months\n")
	sb.WriteString("3. Tag every resource with Environment and CostCenter\n")
	sb.WriteString("4. Implement S3 lifecycle policies to move old data to cheaper storage classes\n")
	sb.WriteString("5. Right-size from the start: modest Lambda memory, on-demand DynamoDB, Intelligent-Tiering for unknown access patterns\n\n")
}

func writeRoadmap(sb *strings.Builder, doc guide.Document) {
	sb.WriteString("# Implementation Roadmap\n\n")
	fmt.Fprintf(sb, "**Estimated timeline:** %s\n\n", doc.Introduction.Timeline)
	fmt.Fprintf(sb, "**Difficulty level:** %s\n\n", doc.Introduction.Difficulty)
	sb.WriteString("Each phase builds on the previous one, so you can test as you go and have a working system at each milestone. " +
		"Deploy to a development environment first, test thoroughly, then promote to production.\n\n")

	for _, phase := range doc.ImplementationPhases {
		fmt.Fprintf(sb, "## Phase %d: %s\n\n", phase.Number, phase.Name)
		fmt.Fprintf(sb, "*Estimated time: %s*\n\n", phase.Duration)
		if phase.Description != "" {
			sb.WriteString(phase.Description + "\n\n")
		}
		for i, step := range phase.Steps {
			fmt.Fprintf(sb, "%d. %s\n", i+1, step)
		}
		sb.WriteString("\n")
	}
}

func writeBestPractices(sb *strings.Builder, doc guide.Document) {
	sb.WriteString("# Best Practices\n\n")
	for _, bp := range doc.BestPractices {
		fmt.Fprintf(sb, "- %s\n", bp)
	}
	sb.WriteString("\n## Red Flags - Stop Immediately If You See These\n\n")
	for _, flag := range []string{
		"AWS root account used for daily operations (use IAM users/roles)",
		"Access keys in code repositories (use Secrets Manager or IAM roles)",
		"No MFA on AWS accounts",
		"Writing custom auth instead of using Cognito",
		"Storing sensitive data unencrypted",
		"No backup strategy (enable point-in-time recovery, S3 versioning)",
	} {
		fmt.Fprintf(sb, "- %s\n", flag)
	}
	sb.WriteString("\n")
}

func writeConclusion(sb *strings.Builder, projectType string) {
	p := profileFor(projectType)
	sb.WriteString("# You're Ready to Build\n\n")
	sb.WriteString(p.conclusion + "\n\n")
	sb.WriteString("**Your immediate next steps:**\n\n")
	sb.WriteString("1. Generate the Terraform code to skip days of manual setup\n")
	sb.WriteString("2. Set up your AWS account: enable MFA on root, create an IAM admin user, configure billing alerts\n")
	sb.WriteString("3. Deploy to development first, never test in production\n")
	sb.WriteString("4. Work through Phase 1 of the implementation guide before anything else\n")
	sb.WriteString("5. Join the AWS communities (re:Post, r/aws) for when you get stuck\n\n")
	sb.WriteString("This architecture is your starting point, not your final destination. " +
		"Monitor everything from day one, document your decisions, and budget for 20-30% more than estimated costs.\n")
}
