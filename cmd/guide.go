package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"counsel/internal/render"
)

var (
	guideUsers  int
	guideOutput string
	guideRender bool
)

func init() {
	rootCmd.AddCommand(guideCmd)

	guideCmd.Flags().IntVar(&guideUsers, "users", 1000, "estimated number of users")
	guideCmd.Flags().StringVarP(&guideOutput, "output", "o", "text", "output format: text, json, yaml")
	guideCmd.Flags().BoolVar(&guideRender, "render", false, "render the narrative with terminal styling")
}

var guideCmd = &cobra.Command{
	Use:   "guide [description]",
	Short: "Generate the full implementation guide for a project",
	Long: `Run the full analysis and print the implementation guide as a markdown
narrative: executive summary, architecture walkthrough, cost analysis,
phased roadmap, and best practices.

Examples:
  counsel guide "a marketplace for second-hand books" --users 20000
  counsel guide "a blog" --render
  counsel guide "a mobile app backend" -o yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGuide,
}

func runGuide(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	if guideUsers < 1 {
		return fmt.Errorf("--users must be at least 1")
	}

	result := runPipeline(description, guideUsers)

	if guideOutput != "text" {
		out, err := renderStructured(result.Guide, guideOutput)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	narrative := render.Markdown(result.Guide, result.Classification, result.Services, result.Costs, guideUsers)

	if guideRender {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		styled, err := renderer.Render(narrative)
		if err != nil {
			return fmt.Errorf("failed to render narrative: %w", err)
		}
		fmt.Print(styled)
		return nil
	}

	fmt.Print(narrative)
	return nil
}
