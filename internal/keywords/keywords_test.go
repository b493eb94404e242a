package keywords

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jobsathi/jobsathi/internal/model"
)

func profileFromJSON(t *testing.T, raw string) *model.Profile {
	t.Helper()
	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	return &p
}

func TestExtract_RoleFirstAndDeduped(t *testing.T) {
	p := profileFromJSON(t, `{"role": "Driver", "skills": ["Driving", "Driving"]}`)

	terms := Extract(p)
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %v", terms)
	}
	if terms[0] != "Driver" {
		t.Errorf("expected role at index 0, got %q", terms[0])
	}
	count := 0
	for _, term := range terms {
		if term == "Driving" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Driving exactly once, got %d", count)
	}
}

func TestExtract_CapsAtEight(t *testing.T) {
	p := &model.Profile{Role: "Engineer"}
	for i := 0; i < 20; i++ {
		p.Skills = append(p.Skills, model.NamedValue{Name: fmt.Sprintf("Skill%02d", i)})
	}

	terms := Extract(p)
	if len(terms) != MaxKeywords {
		t.Fatalf("expected %d terms, got %d", MaxKeywords, len(terms))
	}
	if terms[0] != "Engineer" {
		t.Errorf("expected role preserved at index 0, got %q", terms[0])
	}
}

func TestExtract_FiltersStopValuesAndShortTerms(t *testing.T) {
	p := profileFromJSON(t, `{
		"role": "null",
		"skills": ["Go", "Python", "  ", "None"],
		"certifications": ["n/a", "AWS Certified"]
	}`)

	terms := Extract(p)
	want := map[string]bool{"Python": true, "AWS Certified": true}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %v", len(want), terms)
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}
}

func TestExtract_CollectsExperienceAndEducation(t *testing.T) {
	p := profileFromJSON(t, `{
		"experience_details": [{"company": "Acme", "role": "Mechanic"}],
		"education": [{"degree": "B.Tech Mechanical"}]
	}`)

	terms := Extract(p)
	want := []string{"Mechanic", "Acme", "B.Tech Mechanical"}
	if len(terms) != len(want) {
		t.Fatalf("expected %v, got %v", want, terms)
	}
	for i, w := range want {
		if terms[i] != w {
			t.Errorf("expected terms[%d]=%q, got %q", i, w, terms[i])
		}
	}
}

func TestExtract_ObjectShapedSkills(t *testing.T) {
	p := profileFromJSON(t, `{"skills": [{"name": "Welding"}, {"skill": "Plumbing"}]}`)

	terms := Extract(p)
	if len(terms) != 2 || terms[0] != "Welding" || terms[1] != "Plumbing" {
		t.Fatalf("expected object-shaped skills extracted, got %v", terms)
	}
}

func TestExtract_NilProfile(t *testing.T) {
	if terms := Extract(nil); terms != nil {
		t.Errorf("expected nil for nil profile, got %v", terms)
	}
}
