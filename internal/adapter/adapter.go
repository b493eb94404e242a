// Package adapter contains one Provider implementation per external
// job-search API. Adapters differ only in endpoint shape, query
// parameter names, and response field paths; each keeps those quirks
// local and normalizes into the shared model.JobRecord.
package adapter

import (
	"encoding/json"
	"time"
)

// maxKeywordQueries bounds outbound call volume per provider: only the
// first keywords of the extracted list are queried.
const maxKeywordQueries = 3

// descriptionLimit caps normalized job descriptions.
const descriptionLimit = 300

// defaultCallTimeout bounds each individual provider request so a hung
// endpoint cannot stall the whole fetch.
const defaultCallTimeout = 10 * time.Second

const notSpecified = "Not specified"

// truncate returns s cut to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// orDefault substitutes def for an empty value.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// capKeywords limits the keyword list to the per-provider query cap.
func capKeywords(keywords []string) []string {
	if len(keywords) > maxKeywordQueries {
		return keywords[:maxKeywordQueries]
	}
	return keywords
}

// formatSalary renders a numeric salary field, falling back to the
// "Not specified" sentinel when the provider omitted it.
func formatSalary(n json.Number) string {
	if n == "" {
		return notSpecified
	}
	return n.String()
}
