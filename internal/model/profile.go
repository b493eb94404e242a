package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Profile is the job seeker's background document produced by the
// upstream profile builder. It is read-only to this subsystem: the
// same instance feeds both keyword extraction and relevance scoring.
//
// Several fields arrive in two shapes depending on how the extraction
// service emitted them ("Python" vs {"name": "Python"}); those decode
// through NamedValue so downstream code only ever sees the name.
type Profile struct {
	Role              string             `json:"role"`
	Skills            []NamedValue       `json:"skills"`
	ExperienceDetails []ExperienceDetail `json:"experience_details"`
	Education         []Education        `json:"education"`
	Certifications    []NamedValue       `json:"certifications"`
	ExperienceYears   FlexYears          `json:"experience_years"`
	Location          string             `json:"location"`
	Languages         []NamedValue       `json:"languages"`
}

// ExperienceDetail is one prior engagement.
type ExperienceDetail struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Education is one degree entry.
type Education struct {
	Degree string `json:"degree"`
}

// NamedValue decodes a field that may be a bare string or an object
// carrying the value under one of several name-like keys (skills use
// "name"/"skill", certifications "name"/"certification", languages
// "language"/"name").
type NamedValue struct {
	Name string
}

func (v *NamedValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Name = s
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		// Wrong shape (number, array). Treat as absent, not fatal.
		v.Name = ""
		return nil
	}
	for _, key := range []string{"name", "skill", "certification", "language"} {
		if raw, ok := obj[key]; ok {
			if s, ok := raw.(string); ok && s != "" {
				v.Name = s
				return nil
			}
		}
	}
	v.Name = ""
	return nil
}

func (v NamedValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Name)
}

// FlexYears decodes experience_years, which may arrive as a JSON
// number, a numeric string, or junk ("null", "none", ""). Zero and
// unparseable values count as absent.
type FlexYears struct {
	value int
	valid bool
}

// Years reports the parsed value and whether it is usable.
func (y FlexYears) Years() (int, bool) {
	return y.value, y.valid
}

func (y *FlexYears) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		y.value = n
		y.valid = n != 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		y.value = int(f)
		y.valid = y.value != 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		y.valid = false
		return nil
	}
	s = strings.TrimSpace(s)
	if IsAbsent(s) || s == "0" {
		y.valid = false
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		y.valid = false
		return nil
	}
	y.value = n
	y.valid = n != 0
	return nil
}

func (y FlexYears) MarshalJSON() ([]byte, error) {
	if !y.valid {
		return []byte("null"), nil
	}
	return json.Marshal(y.value)
}

// IsAbsent reports whether a profile string value carries no real
// content: empty, "null", or "none" (case-insensitive).
func IsAbsent(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "none":
		return true
	}
	return false
}

// Names flattens a NamedValue slice to its non-absent names, trimmed.
func Names(values []NamedValue) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		name := strings.TrimSpace(v.Name)
		if IsAbsent(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
