package render

import (
	"strings"
	"testing"

	"counsel/internal/classify"
	"counsel/internal/cost"
	"counsel/internal/guide"
	"counsel/internal/recommend"
)

func buildFixture(t *testing.T) (guide.Document, classify.Classification, []recommend.Service, cost.Analysis) {
	t.Helper()
	c := classify.Classification{Primary: "ecommerce", Confidence: 0.85, Features: []string{"ecommerce", "authentication"}}
	services := recommend.Recommend(c, 5_000)
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	analysis := cost.Calculate(ids, 5_000)
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	doc := guide.Generate(names, c, 5_000)
	return doc, c, services, analysis
}

func TestMarkdownSections(t *testing.T) {
	doc, c, services, analysis := buildFixture(t)
	md := Markdown(doc, c, services, analysis, 5_000)

	for _, heading := range []string{
		"# Executive Summary",
		"# Architecture Deep Dive",
		"# Cost Analysis",
		"# Implementation Roadmap",
		"# Best Practices",
		"# You're Ready to Build",
	} {
		if !strings.Contains(md, heading) {
			t.Errorf("narrative missing %q", heading)
		}
	}
}

func TestMarkdownProjectProfile(t *testing.T) {
	doc, c, services, analysis := buildFixture(t)
	md := Markdown(doc, c, services, analysis, 5_000)

	if !strings.Contains(md, "E-Commerce Platform") {
		t.Error("expected the ecommerce profile title")
	}
	if !strings.Contains(md, "highly confident") {
		t.Errorf("confidence 0.85 should read as highly confident")
	}
	if !strings.Contains(md, "Medium Scale (5,000 users)") {
		t.Error("expected the medium scale label with a grouped user count")
	}
}

func TestMarkdownUnknownTypeFallsBack(t *testing.T) {
	c := classify.Classification{Primary: "analytics", Confidence: 0.5, Features: []string{"analytics"}}
	services := recommend.Recommend(c, 500)
	doc := guide.Generate(nil, c, 500)
	md := Markdown(doc, c, services, cost.Analysis{}, 500)

	if !strings.Contains(md, "Web Application") {
		t.Error("unknown project types should use the web application profile")
	}
	if strings.Contains(md, "Free Tier Opportunity") {
		t.Error("free tier section should be omitted when not viable")
	}
}

func TestMarkdownListsEveryService(t *testing.T) {
	doc, c, services, analysis := buildFixture(t)
	md := Markdown(doc, c, services, analysis, 5_000)
	for _, s := range services {
		if !strings.Contains(md, s.Name) {
			t.Errorf("narrative missing service %s", s.Name)
		}
	}
}

func TestMarkdownPhases(t *testing.T) {
	doc, c, services, analysis := buildFixture(t)
	md := Markdown(doc, c, services, analysis, 5_000)
	for _, phase := range doc.ImplementationPhases {
		if !strings.Contains(md, phase.Name) {
			t.Errorf("narrative missing phase %s", phase.Name)
		}
	}
}
