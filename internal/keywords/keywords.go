// Package keywords derives a small, prioritized set of search terms
// from a profile. The cap bounds outbound API call volume: every
// keyword multiplies across every job provider.
package keywords

import (
	"strings"

	"github.com/jobsathi/jobsathi/internal/model"
)

// MaxKeywords caps the extracted term list.
const MaxKeywords = 8

// minTermLen filters out noise like "C" or "ML" from free-form skill
// and certification lists.
const minTermLen = 2

// Extract returns up to MaxKeywords search terms for the profile.
// The role, when present, is always first; the rest keep a
// deterministic collection order (skills, experience roles and
// companies, degrees, certifications) with case-sensitive dedup.
func Extract(profile *model.Profile) []string {
	if profile == nil {
		return nil
	}

	seen := make(map[string]struct{})
	terms := make([]string, 0, MaxKeywords)

	add := func(raw string) {
		term := strings.TrimSpace(raw)
		if isStopTerm(term) {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	add(profile.Role)

	for _, skill := range model.Names(profile.Skills) {
		if len(skill) > minTermLen {
			add(skill)
		}
	}

	for _, exp := range profile.ExperienceDetails {
		add(exp.Role)
		add(exp.Company)
	}

	for _, edu := range profile.Education {
		add(edu.Degree)
	}

	for _, cert := range model.Names(profile.Certifications) {
		if len(cert) > minTermLen {
			add(cert)
		}
	}

	if len(terms) > MaxKeywords {
		terms = terms[:MaxKeywords]
	}
	return terms
}

// isStopTerm reports whether a trimmed candidate carries no real
// content and must not become a search term.
func isStopTerm(term string) bool {
	switch strings.ToLower(term) {
	case "", "null", "none", "n/a":
		return true
	}
	return false
}
