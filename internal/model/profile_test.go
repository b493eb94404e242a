package model

import (
	"encoding/json"
	"testing"
)

func TestProfile_UnionShapes(t *testing.T) {
	raw := `{
		"role": "Software Engineer",
		"skills": ["Python", {"name": "Go"}, {"skill": "Docker"}],
		"certifications": [{"certification": "AWS SAA"}],
		"languages": [{"language": "Hindi"}, "Marathi", {"name": "Tamil"}]
	}`
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	skills := Names(p.Skills)
	want := []string{"Python", "Go", "Docker"}
	if len(skills) != len(want) {
		t.Fatalf("expected %v, got %v", want, skills)
	}
	for i, w := range want {
		if skills[i] != w {
			t.Errorf("skills[%d]: expected %q, got %q", i, w, skills[i])
		}
	}

	if certs := Names(p.Certifications); len(certs) != 1 || certs[0] != "AWS SAA" {
		t.Errorf("expected [AWS SAA], got %v", certs)
	}
	if langs := Names(p.Languages); len(langs) != 3 {
		t.Errorf("expected 3 languages, got %v", langs)
	}
}

func TestProfile_MalformedEntriesAreAbsent(t *testing.T) {
	raw := `{"skills": [42, ["nested"], {"level": "expert"}, "Real Skill"]}`
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal should tolerate junk entries: %v", err)
	}
	if skills := Names(p.Skills); len(skills) != 1 || skills[0] != "Real Skill" {
		t.Errorf("expected only the real skill, got %v", skills)
	}
}

func TestFlexYears(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  int
		valid bool
	}{
		{"number", `{"experience_years": 7}`, 7, true},
		{"numeric string", `{"experience_years": "3"}`, 3, true},
		{"zero", `{"experience_years": 0}`, 0, false},
		{"zero string", `{"experience_years": "0"}`, 0, false},
		{"null", `{"experience_years": null}`, 0, false},
		{"none string", `{"experience_years": "none"}`, 0, false},
		{"junk", `{"experience_years": "plenty"}`, 0, false},
		{"missing", `{}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Profile
			if err := json.Unmarshal([]byte(tc.raw), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, ok := p.ExperienceYears.Years()
			if ok != tc.valid {
				t.Fatalf("expected valid=%v, got %v", tc.valid, ok)
			}
			if ok && got != tc.want {
				t.Errorf("expected %d years, got %d", tc.want, got)
			}
		})
	}
}

func TestIsAbsent(t *testing.T) {
	for _, s := range []string{"", "  ", "null", "NULL", "None", " none "} {
		if !IsAbsent(s) {
			t.Errorf("expected %q to be absent", s)
		}
	}
	for _, s := range []string{"Pune", "0", "n/a"} {
		if IsAbsent(s) {
			t.Errorf("expected %q to be present", s)
		}
	}
}
