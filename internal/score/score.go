// Package score computes the relevance of a job record to a profile.
//
// The score is an additive heuristic: every rule is evaluated
// independently and a job accumulates points for each one it matches.
// It is a relative ranking signal with no upper bound, not a
// normalized probability.
package score

import (
	"strings"

	"github.com/jobsathi/jobsathi/internal/model"
)

// Rule weights. Title matches outweigh description matches, and the
// desired role outweighs individual skills.
const (
	roleTitlePoints    = 15
	roleDescPoints     = 7
	skillTitlePoints   = 10
	skillDescPoints    = 4
	certPoints         = 8
	degreePoints       = 6
	seniorityPoints    = 5
	locationPoints     = 8
	locationPartPoints = 3
	languagePoints     = 4
)

// Relevance scores job against profile. Pure function: matching is
// case-insensitive substring containment, malformed or absent profile
// fields contribute nothing, and it never panics.
func Relevance(job model.JobRecord, profile *model.Profile) int {
	if profile == nil {
		return 0
	}

	total := 0
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)

	if role := strings.ToLower(profile.Role); !model.IsAbsent(role) {
		if strings.Contains(title, role) {
			total += roleTitlePoints
		}
		if strings.Contains(desc, role) {
			total += roleDescPoints
		}
	}

	for _, skill := range model.Names(profile.Skills) {
		skill = strings.ToLower(skill)
		if strings.Contains(title, skill) {
			total += skillTitlePoints
		}
		if strings.Contains(desc, skill) {
			total += skillDescPoints
		}
	}

	for _, cert := range model.Names(profile.Certifications) {
		cert = strings.ToLower(cert)
		if strings.Contains(title, cert) || strings.Contains(desc, cert) {
			total += certPoints
		}
	}

	for _, edu := range profile.Education {
		degree := strings.ToLower(edu.Degree)
		if model.IsAbsent(degree) {
			continue
		}
		if strings.Contains(title, degree) || strings.Contains(desc, degree) {
			total += degreePoints
		}
	}

	total += seniorityScore(title, profile.ExperienceYears)
	total += locationScore(job.Location, profile.Location)

	for _, lang := range model.Names(profile.Languages) {
		lang = strings.ToLower(lang)
		if lang == "english" {
			continue
		}
		if strings.Contains(desc, lang) {
			total += languagePoints
		}
	}

	return total
}

// seniorityScore awards points when the job title's seniority wording
// lines up with the candidate's years of experience. An unparseable or
// zero experience_years makes the rule inapplicable.
func seniorityScore(title string, exp model.FlexYears) int {
	years, ok := exp.Years()
	if !ok {
		return 0
	}

	switch {
	case years >= 5:
		if strings.Contains(title, "senior") || strings.Contains(title, "lead") {
			return seniorityPoints
		}
	case years >= 2:
		if strings.Contains(title, "mid") || strings.Contains(title, "intermediate") {
			return seniorityPoints
		}
	default:
		if strings.Contains(title, "junior") || strings.Contains(title, "entry") || strings.Contains(title, "fresher") {
			return seniorityPoints
		}
	}
	return 0
}

// locationScore awards a full match for the whole profile location and
// a single smaller bonus for the first individual token (city, state)
// found in the job location.
func locationScore(jobLocation, profileLocation string) int {
	loc := strings.ToLower(strings.TrimSpace(profileLocation))
	if model.IsAbsent(loc) {
		return 0
	}
	jobLoc := strings.ToLower(jobLocation)

	total := 0
	if strings.Contains(jobLoc, loc) {
		total += locationPoints
	}
	for _, part := range strings.Fields(loc) {
		if len(part) > 2 && strings.Contains(jobLoc, part) {
			total += locationPartPoints
			break
		}
	}
	return total
}
