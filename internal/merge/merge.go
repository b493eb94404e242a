// Package merge combines per-provider result lists into one unique
// list of job records.
package merge

import (
	"strings"

	"github.com/jobsathi/jobsathi/internal/model"
)

// identity is the dedup key: the same posting surfaced by several
// providers (or several keyword queries) shares a case-insensitive
// trimmed (title, company, location) triple.
type identity struct {
	title    string
	company  string
	location string
}

func identityOf(job model.JobRecord) identity {
	return identity{
		title:    normalize(job.Title),
		company:  normalize(job.Company),
		location: normalize(job.Location),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Records merges the given result lists, preserving first-seen order
// across the concatenation of the lists in call order. Records sharing
// an identity collapse to the first occurrence. A record with an empty
// title is dropped unconditionally: the title is the primary existence
// signal for a posting.
func Records(lists ...[]model.JobRecord) []model.JobRecord {
	seen := make(map[identity]struct{})
	var merged []model.JobRecord

	for _, list := range lists {
		for _, job := range list {
			if strings.TrimSpace(job.Title) == "" {
				continue
			}
			id := identityOf(job)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, job)
		}
	}

	return merged
}
