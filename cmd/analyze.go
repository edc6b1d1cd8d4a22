package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"counsel/internal/classify"
	"counsel/internal/cost"
	"counsel/internal/guide"
	"counsel/internal/recommend"
)

var (
	analyzeUsers  int
	analyzeOutput string
)

// analysisResult is the combined payload for --output json/yaml.
type analysisResult struct {
	Classification classify.Classification `json:"classification" yaml:"classification"`
	Services       []recommend.Service     `json:"services" yaml:"services"`
	Costs          cost.Analysis           `json:"cost_analysis" yaml:"cost_analysis"`
	Guide          guide.Document          `json:"implementation_guide" yaml:"implementation_guide"`
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVar(&analyzeUsers, "users", 1000, "estimated number of users")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "text", "output format: text, json, yaml")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [description]",
	Short: "Analyze a project description and recommend an AWS architecture",
	Long: `Classify the project, recommend AWS services with contextual reasoning,
estimate monthly costs, and produce an implementation guide.

Examples:
  counsel analyze "a blog with comments and a newsletter"
  counsel analyze "an online store with checkout" --users 50000
  counsel analyze "a chat app" --users 5000 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	if analyzeUsers < 1 {
		return fmt.Errorf("--users must be at least 1")
	}

	result := runPipeline(description, analyzeUsers)

	if analyzeOutput != "text" {
		out, err := renderStructured(result, analyzeOutput)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printAnalysisText(result)
	return nil
}

func runPipeline(description string, users int) analysisResult {
	classification := classify.Classify(description)
	services := recommend.Recommend(classification, users)

	ids := make([]string, len(services))
	names := make([]string, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
		names[i] = svc.Name
	}

	return analysisResult{
		Classification: classification,
		Services:       services,
		Costs:          cost.Calculate(ids, users),
		Guide:          guide.Generate(names, classification, users),
	}
}

func printAnalysisText(result analysisResult) {
	c := result.Classification
	fmt.Printf("Project type: %s (%.0f%% confidence)\n", c.Primary, c.Confidence*100)
	if len(c.Features) > 1 {
		fmt.Printf("Detected features: %s\n", strings.Join(c.Features, ", "))
	}
	fmt.Println()

	fmt.Println("Recommended services:")
	for i, svc := range result.Services {
		fmt.Printf("  %d. %s (%s)\n", i+1, svc.Name, svc.Category)
		fmt.Printf("     %s\n", svc.WhyNeeded)
		fmt.Printf("     Typical: $%s/month, free tier: %s\n", svc.TypicalMonthly, svc.FreeTier)
	}

	formatter := cost.NewFormatter("text", true)
	out, err := formatter.FormatAnalysis(&result.Costs)
	if err == nil {
		formatter.Print(out)
	}

	fmt.Println()
	fmt.Printf("Guide: %s\n", result.Guide.Introduction.Title)
	fmt.Printf("  Difficulty: %s\n", result.Guide.Introduction.Difficulty)
	fmt.Printf("  Timeline:   %s\n", result.Guide.Introduction.Timeline)
	fmt.Printf("  Monthly cost: %s\n", result.Guide.Introduction.EstimatedCost)
	fmt.Println("\nRun 'counsel guide' for the full implementation guide.")
}
