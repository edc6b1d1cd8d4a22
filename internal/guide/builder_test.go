package guide

import (
	"reflect"
	"strings"
	"testing"

	"counsel/internal/classify"
)

func TestGenerateBlogExample(t *testing.T) {
	doc := Generate([]string{"AWS Lambda"}, classify.Classification{Primary: "blog"}, 500)

	if doc.Introduction.Difficulty != "Beginner" {
		t.Errorf("expected difficulty 'Beginner', got '%s'", doc.Introduction.Difficulty)
	}
	if doc.Introduction.EstimatedCost != "$0-25/month" {
		t.Errorf("expected cost '$0-25/month', got '%s'", doc.Introduction.EstimatedCost)
	}
	if len(doc.ServiceImplementations) != 1 {
		t.Fatalf("expected 1 implementation, got %d", len(doc.ServiceImplementations))
	}
	want := "Memory: 256MB, Timeout: 10s, Concurrency: 10"
	if doc.ServiceImplementations[0].Configuration != want {
		t.Errorf("expected configuration '%s', got '%s'", want, doc.ServiceImplementations[0].Configuration)
	}
	if doc.Introduction.Title != "Building Your Blog Platform on AWS" {
		t.Errorf("unexpected title '%s'", doc.Introduction.Title)
	}
	if doc.Architecture.Pattern != "Serverless" {
		t.Errorf("expected Serverless pattern, got '%s'", doc.Architecture.Pattern)
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	doc := Generate(nil, classify.Classification{}, 0)

	if doc.ProjectContext.ServicesCount != 0 {
		t.Errorf("expected services_count 0, got %d", doc.ProjectContext.ServicesCount)
	}
	if len(doc.ServiceImplementations) != 0 {
		t.Errorf("expected no implementations, got %d", len(doc.ServiceImplementations))
	}
	if len(doc.ImplementationPhases) != 3 {
		t.Fatalf("expected exactly 3 phases, got %d", len(doc.ImplementationPhases))
	}
	names := []string{
		doc.ImplementationPhases[0].Name,
		doc.ImplementationPhases[1].Name,
		doc.ImplementationPhases[2].Name,
	}
	wantNames := []string{"Foundation Setup", "Testing & QA", "Deployment"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("expected phases %v, got %v", wantNames, names)
	}
	if doc.ProjectContext.Type != "application" {
		t.Errorf("expected default project type 'application', got '%s'", doc.ProjectContext.Type)
	}
	if doc.Sections != 6 {
		t.Errorf("expected sections 6, got %d", doc.Sections)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	services := []string{"AWS Lambda", "Amazon DynamoDB", "Amazon S3", "Amazon Cognito"}
	c := classify.Classification{Primary: "ecommerce", Features: []string{"ecommerce", "api"}}

	a := Generate(services, c, 25_000)
	b := Generate(services, c, 25_000)
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls with identical arguments produced different documents")
	}
}

func TestLowestBandValues(t *testing.T) {
	for _, users := range []int{0, 1, 500, 999} {
		doc := Generate([]string{"AWS Lambda"}, classify.Classification{}, users)
		if doc.Introduction.EstimatedCost != "$0-25/month" {
			t.Errorf("users=%d: expected lowest cost band, got '%s'", users, doc.Introduction.EstimatedCost)
		}
		cfg := doc.ServiceImplementations[0].Configuration
		if !strings.HasPrefix(cfg, "Memory: 256MB, Timeout: 10s") {
			t.Errorf("users=%d: expected smallest Lambda tier, got '%s'", users, cfg)
		}
	}
}

func TestMidBandScaleDecisions(t *testing.T) {
	for _, users := range []int{10_000, 50_000, 99_999} {
		doc := Generate([]string{"Amazon DynamoDB", "Amazon S3"}, classify.Classification{}, users)

		ddb := doc.ServiceImplementations[0].Configuration
		if !strings.Contains(ddb, "Billing: provisioned") {
			t.Errorf("users=%d: expected provisioned billing, got '%s'", users, ddb)
		}
		s3 := doc.ServiceImplementations[1].Configuration
		if !strings.Contains(s3, "Intelligent-Tiering") {
			t.Errorf("users=%d: expected intelligent-tiering lifecycle, got '%s'", users, s3)
		}
	}
}

func TestBelowBoundaryScaleDecisions(t *testing.T) {
	doc := Generate([]string{"Amazon DynamoDB", "Amazon S3"}, classify.Classification{}, 9_999)

	if !strings.Contains(doc.ServiceImplementations[0].Configuration, "Billing: on-demand") {
		t.Errorf("expected on-demand billing below 10k users, got '%s'", doc.ServiceImplementations[0].Configuration)
	}
	if !strings.Contains(doc.ServiceImplementations[1].Configuration, "S3-IA after 90 days") {
		t.Errorf("expected IA lifecycle below 10k users, got '%s'", doc.ServiceImplementations[1].Configuration)
	}
}

func TestCognitoRecord(t *testing.T) {
	cases := []string{"Amazon Cognito", "cognito", "AWS COGNITO"}
	for _, name := range cases {
		doc := Generate([]string{name}, classify.Classification{}, 500)

		matches := 0
		for _, impl := range doc.ServiceImplementations {
			if impl.Service == name {
				matches++
				if !strings.HasPrefix(impl.Configuration, "MFA:") {
					t.Errorf("%q: expected configuration starting with 'MFA:', got '%s'", name, impl.Configuration)
				}
			}
		}
		if matches != 1 {
			t.Errorf("%q: expected exactly one matching record, got %d", name, matches)
		}
	}
}

func TestDifficultyMonotonicInRDS(t *testing.T) {
	rank := map[string]int{"Beginner": 0, "Intermediate": 1, "Advanced": 2}

	base := [][]string{
		{},
		{"AWS Lambda"},
		{"Amazon Cognito"},
		{"Amazon DynamoDB", "Amazon Cognito"},
		{"Amazon RDS"},
	}
	for _, services := range base {
		before := Generate(services, classify.Classification{}, 500).Introduction.Difficulty
		after := Generate(append(append([]string{}, services...), "Amazon RDS"), classify.Classification{}, 500).Introduction.Difficulty
		if rank[after] < rank[before] {
			t.Errorf("appending RDS to %v lowered difficulty from %s to %s", services, before, after)
		}
	}
}

func TestImplementationCountMatchesServices(t *testing.T) {
	lists := [][]string{
		{},
		{"AWS Lambda"},
		{"Something Unknown", "Another One"},
		{"AWS Lambda", "Amazon DynamoDB", "Amazon S3", "Amazon Cognito", "Mystery Service"},
	}
	for _, services := range lists {
		doc := Generate(services, classify.Classification{}, 1_000)
		if len(doc.ServiceImplementations) != len(services) {
			t.Errorf("services %v: expected %d implementations, got %d",
				services, len(services), len(doc.ServiceImplementations))
		}
	}
}

func TestUnknownServiceFallback(t *testing.T) {
	doc := Generate([]string{"Amazon Aurora Serverless"}, classify.Classification{}, 500)

	impl := doc.ServiceImplementations[0]
	if impl.Service != "Amazon Aurora Serverless" {
		t.Errorf("fallback record should echo the original name, got '%s'", impl.Service)
	}
	if impl.Configuration != "Standard configuration" {
		t.Errorf("expected generic configuration, got '%s'", impl.Configuration)
	}
}

func TestDifficultyWeights(t *testing.T) {
	tests := []struct {
		services []string
		want     string
	}{
		{[]string{}, "Beginner"},
		{[]string{"Amazon DynamoDB"}, "Beginner"},
		{[]string{"Amazon Cognito"}, "Intermediate"},
		{[]string{"Amazon Cognito", "Amazon DynamoDB"}, "Intermediate"},
		{[]string{"Amazon RDS"}, "Intermediate"},
		{[]string{"Amazon RDS", "Amazon Cognito"}, "Advanced"},
		{[]string{"Amazon RDS", "Amazon DynamoDB"}, "Advanced"},
	}
	for _, tt := range tests {
		got := Generate(tt.services, classify.Classification{}, 500).Introduction.Difficulty
		if got != tt.want {
			t.Errorf("services %v: expected %s, got %s", tt.services, tt.want, got)
		}
	}
}

func TestTimelineArithmetic(t *testing.T) {
	// 3 services: 15 + 15 = 30 hours, 30/8 = 3 days.
	doc := Generate([]string{"a", "b", "c"}, classify.Classification{}, 100)
	if doc.Introduction.Timeline != "30-40 hours over 3-5 days" {
		t.Errorf("unexpected timeline '%s'", doc.Introduction.Timeline)
	}

	// 10 services: 65 hours, 65/8 = 8 days.
	many := make([]string, 10)
	for i := range many {
		many[i] = "svc"
	}
	doc = Generate(many, classify.Classification{}, 100)
	if doc.Introduction.Timeline != "65-75 hours over 8-10 days" {
		t.Errorf("unexpected timeline '%s'", doc.Introduction.Timeline)
	}
}

func TestPhaseNumbersSequential(t *testing.T) {
	doc := Generate([]string{"AWS Lambda", "Amazon DynamoDB", "Amazon Cognito"}, classify.Classification{}, 500)

	wantNames := []string{"Foundation Setup", "Database Setup", "API Development", "Authentication", "Testing & QA", "Deployment"}
	if len(doc.ImplementationPhases) != len(wantNames) {
		t.Fatalf("expected %d phases, got %d", len(wantNames), len(doc.ImplementationPhases))
	}
	for i, phase := range doc.ImplementationPhases {
		if phase.Number != i+1 {
			t.Errorf("phase %d has number %d", i, phase.Number)
		}
		if phase.Name != wantNames[i] {
			t.Errorf("phase %d: expected '%s', got '%s'", i, wantNames[i], phase.Name)
		}
	}
}

func TestTestingDurationScales(t *testing.T) {
	find := func(doc Document) string {
		for _, p := range doc.ImplementationPhases {
			if p.Name == "Testing & QA" {
				return p.Duration
			}
		}
		t.Fatal("Testing & QA phase missing")
		return ""
	}

	small := Generate(nil, classify.Classification{}, 500)
	if find(small) != "2-4 hours" {
		t.Errorf("expected short testing phase below 10k users, got '%s'", find(small))
	}
	big := Generate(nil, classify.Classification{}, 50_000)
	if find(big) != "4-8 hours" {
		t.Errorf("expected long testing phase at scale, got '%s'", find(big))
	}
}
