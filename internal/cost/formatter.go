package cost

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// Colors for terminal output
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Formatter handles output formatting
type Formatter struct {
	format string
	color  bool
}

// NewFormatter creates a new formatter
func NewFormatter(format string, color bool) *Formatter {
	return &Formatter{
		format: format,
		color:  color,
	}
}

// FormatAnalysis formats the cost analysis
func (f *Formatter) FormatAnalysis(analysis *Analysis) (string, error) {
	if f.format == "json" {
		return f.toJSON(analysis)
	}

	var sb strings.Builder

	sb.WriteString(f.header("Estimated Monthly Cost"))

	sb.WriteString(f.bold(fmt.Sprintf("Typical: %s\n",
		f.green(analysis.Summary.Typical+"/month"))))
	sb.WriteString(fmt.Sprintf("Range:   %s to %s\n",
		analysis.Summary.Minimum, analysis.Summary.Maximum))
	if analysis.Summary.FreeTierViable {
		sb.WriteString("Free tier: can cover early usage\n")
	}
	sb.WriteString("\n")

	sb.WriteString(f.subheader("Breakdown"))
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tMONTHLY")
	fmt.Fprintln(w, "-------\t-------")
	names := make([]string, 0, len(analysis.Breakdown))
	for name := range analysis.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, analysis.Breakdown[name])
	}
	w.Flush()

	return sb.String(), nil
}

// FormatEstimates formats the static per-service pricing records
func (f *Formatter) FormatEstimates(estimates []ServiceEstimate) (string, error) {
	if f.format == "json" {
		return f.toJSON(estimates)
	}

	var sb strings.Builder

	sb.WriteString(f.header("Service Pricing"))

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tCATEGORY\tMONTHLY\tFREE TIER")
	fmt.Fprintln(w, "-------\t--------\t-------\t---------")
	for _, est := range estimates {
		fmt.Fprintf(w, "%s\t%s\t$%s\t%s\n", est.Name, est.Category, est.TypicalMonthly, est.FreeTier)
	}
	w.Flush()

	return sb.String(), nil
}

// Helper methods

func (f *Formatter) header(text string) string {
	if f.color {
		return fmt.Sprintf("\n%s%s=== %s ===%s\n\n", colorBold, colorCyan, text, colorReset)
	}
	return fmt.Sprintf("\n=== %s ===\n\n", text)
}

func (f *Formatter) subheader(text string) string {
	if f.color {
		return fmt.Sprintf("%s%s%s%s\n", colorBold, colorYellow, text, colorReset)
	}
	return fmt.Sprintf("%s\n", text)
}

func (f *Formatter) green(text string) string {
	if f.color {
		return fmt.Sprintf("%s%s%s", colorGreen, text, colorReset)
	}
	return text
}

func (f *Formatter) bold(text string) string {
	if f.color {
		return fmt.Sprintf("%s%s%s", colorBold, text, colorReset)
	}
	return text
}

func (f *Formatter) toJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(data), nil
}

// Print outputs to stdout
func (f *Formatter) Print(output string) {
	fmt.Fprint(os.Stdout, output)
}
