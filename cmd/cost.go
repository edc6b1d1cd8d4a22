package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"counsel/internal/classify"
	"counsel/internal/cost"
	"counsel/internal/recommend"
)

var (
	costUsers    int
	costFormat   string
	costServices []string
	costPricing  bool
)

func init() {
	rootCmd.AddCommand(costCmd)

	costCmd.Flags().IntVar(&costUsers, "users", 1000, "estimated number of users")
	costCmd.Flags().StringVar(&costFormat, "format", "table", "output format: table, json")
	costCmd.Flags().StringSliceVar(&costServices, "services", nil, "estimate these service ids instead of analyzing a description (e.g. lambda,dynamodb,s3)")
	costCmd.Flags().BoolVar(&costPricing, "pricing", false, "show the per-service pricing records instead of a summed analysis")
}

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost [description]",
	Short: "Estimate monthly AWS costs for a project",
	Long: `Estimate the monthly cost of the recommended architecture. Either pass a
project description to analyze, or name the services directly with
--services.

Examples:
  counsel cost "an online store with checkout" --users 50000
  counsel cost --services lambda,dynamodb,s3
  counsel cost --services lambda,s3 --pricing
  counsel cost "a blog" --format json`,
	RunE: runCost,
}

func runCost(cmd *cobra.Command, args []string) error {
	ids := costServices
	if len(ids) == 0 {
		if len(args) == 0 {
			return fmt.Errorf("pass a project description or --services")
		}
		classification := classify.Classify(strings.Join(args, " "))
		for _, svc := range recommend.Recommend(classification, costUsers) {
			ids = append(ids, svc.ID)
		}
	}

	formatter := cost.NewFormatter(costFormat, costFormat != "json")

	if costPricing {
		out, err := formatter.FormatEstimates(pricingRecords(ids))
		if err != nil {
			return err
		}
		formatter.Print(out)
		return nil
	}

	analysis := cost.Calculate(ids, costUsers)
	out, err := formatter.FormatAnalysis(&analysis)
	if err != nil {
		return err
	}
	formatter.Print(out)
	return nil
}

// pricingRecords resolves ids to static pricing records, skipping unknowns
// the same way Calculate does.
func pricingRecords(ids []string) []cost.ServiceEstimate {
	estimates := make([]cost.ServiceEstimate, 0, len(ids))
	for _, id := range ids {
		if est, ok := cost.Estimate(id); ok {
			estimates = append(estimates, est)
		}
	}
	return estimates
}
