package merge

import (
	"testing"

	"github.com/jobsathi/jobsathi/internal/model"
)

func job(title, company, location string) model.JobRecord {
	return model.JobRecord{Title: title, Company: company, Location: location}
}

func TestRecords_DedupIsCaseInsensitive(t *testing.T) {
	a := []model.JobRecord{job("Driver", "A", "Pune")}
	b := []model.JobRecord{job("driver", "a", "pune")}

	merged := Records(a, b)
	if len(merged) != 1 {
		t.Fatalf("expected 1 record, got %d", len(merged))
	}
	// First occurrence wins.
	if merged[0].Title != "Driver" {
		t.Errorf("expected first-seen record kept, got %q", merged[0].Title)
	}
}

func TestRecords_DedupTrimsKeyFields(t *testing.T) {
	a := []model.JobRecord{job("Driver ", " A", "Pune")}
	b := []model.JobRecord{job("Driver", "A", "Pune ")}

	if merged := Records(a, b); len(merged) != 1 {
		t.Fatalf("expected 1 record, got %d", len(merged))
	}
}

func TestRecords_DropsEmptyTitles(t *testing.T) {
	a := []model.JobRecord{job("", "A", "Pune"), job("   ", "B", "Pune"), job("Real", "C", "Pune")}

	merged := Records(a)
	if len(merged) != 1 || merged[0].Title != "Real" {
		t.Fatalf("expected only the titled record, got %v", merged)
	}
}

func TestRecords_PreservesFirstSeenOrder(t *testing.T) {
	a := []model.JobRecord{job("First", "A", "X"), job("Second", "B", "X")}
	b := []model.JobRecord{job("Third", "C", "X"), job("First", "A", "X")}

	merged := Records(a, b)
	want := []string{"First", "Second", "Third"}
	if len(merged) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(merged))
	}
	for i, w := range want {
		if merged[i].Title != w {
			t.Errorf("expected merged[%d]=%q, got %q", i, w, merged[i].Title)
		}
	}
}

func TestRecords_DistinctLocationsAreDistinctJobs(t *testing.T) {
	a := []model.JobRecord{job("Driver", "A", "Pune"), job("Driver", "A", "Mumbai")}

	if merged := Records(a); len(merged) != 2 {
		t.Fatalf("expected 2 records for distinct locations, got %d", len(merged))
	}
}

func TestRecords_NoInput(t *testing.T) {
	if merged := Records(); len(merged) != 0 {
		t.Fatalf("expected empty merge, got %v", merged)
	}
}
