package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"counsel/internal/classify"
	"counsel/internal/iac"
	"counsel/internal/recommend"
)

var (
	iacUsers  int
	iacOutput string
	iacDir    string
)

func init() {
	rootCmd.AddCommand(iacCmd)

	iacCmd.Flags().IntVar(&iacUsers, "users", 1000, "estimated number of users")
	iacCmd.Flags().StringVarP(&iacOutput, "output", "o", "text", "output format: text, json, yaml")
	iacCmd.Flags().StringVar(&iacDir, "dir", "", "write the Terraform files into this directory instead of printing")
}

var iacCmd = &cobra.Command{
	Use:   "iac [description]",
	Short: "Generate Terraform for the recommended architecture",
	Long: `Classify the project, recommend services, and emit a ready-to-apply
Terraform configuration (main.tf, variables.tf, outputs.tf, README.md).

Examples:
  counsel iac "an online store with checkout" --users 50000
  counsel iac "a chat app" --dir ./infra
  counsel iac "a blog" -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIaC,
}

func runIaC(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	if iacUsers < 1 {
		return fmt.Errorf("--users must be at least 1")
	}

	classification := classify.Classify(description)
	services := recommend.Recommend(classification, iacUsers)
	bundle := iac.Generate(services, classification, iacUsers)

	if iacDir != "" {
		return writeBundle(bundle, iacDir)
	}

	if iacOutput != "text" {
		out, err := renderStructured(bundle, iacOutput)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	names := make([]string, 0, len(bundle.Files))
	for name := range bundle.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("# ----- %s -----\n%s\n", name, bundle.Files[name])
	}
	return nil
}

func writeBundle(bundle iac.Bundle, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for name, content := range bundle.Files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	fmt.Printf("Wrote %d files to %s\n", len(bundle.Files), dir)
	for _, instruction := range bundle.Instructions {
		fmt.Println(instruction)
	}
	return nil
}
