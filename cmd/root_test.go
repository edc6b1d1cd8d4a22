package cmd

import (
	"strings"
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"analyze", "guide", "iac", "cost", "serve", "version"}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRunPipelineProducesConsistentResult(t *testing.T) {
	result := runPipeline("an online store with checkout and payments", 5_000)

	if result.Classification.Primary != "ecommerce" {
		t.Errorf("expected ecommerce, got %s", result.Classification.Primary)
	}
	if len(result.Services) == 0 {
		t.Fatal("no services recommended")
	}
	if result.Guide.ProjectContext.ServicesCount != len(result.Services) {
		t.Errorf("guide services count %d does not match recommendation %d",
			result.Guide.ProjectContext.ServicesCount, len(result.Services))
	}
	if result.Costs.Summary.Minimum == "" {
		t.Error("missing cost summary")
	}
}

func TestPricingRecordsSkipUnknownIDs(t *testing.T) {
	records := pricingRecords([]string{"lambda", "fargate", "s3"})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "AWS Lambda" || records[1].Name != "Amazon S3" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestRenderStructured(t *testing.T) {
	v := map[string]int{"answer": 42}

	out, err := renderStructured(v, "json")
	if err != nil || !strings.Contains(out, `"answer": 42`) {
		t.Errorf("json output wrong: %v, %s", err, out)
	}

	out, err = renderStructured(v, "yaml")
	if err != nil || !strings.Contains(out, "answer: 42") {
		t.Errorf("yaml output wrong: %v, %s", err, out)
	}

	if _, err := renderStructured(v, "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
