package build

import "time"

type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusQueued   Status = "queued"
	StatusBuilding Status = "building"
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
	StatusBroken   Status = "broken"
	StatusFixed    Status = "fixed"
)

// Record is one build's state at the moment it was fetched. Records are never
// mutated after a source returns them; every refresh yields a new slice.
type Record struct {
	ID             string
	Name           string
	Status         Status
	LocalStartTime time.Time
	Duration       string
	RequestedBy    string
	Comment        string
	URL            string
}

// IsActive reports whether the build is still waiting or running.
func (r Record) IsActive() bool {
	return r.Status == StatusQueued || r.Status == StatusBuilding
}

// IsFailing reports whether the build's latest outcome is a failure.
func (r Record) IsFailing() bool {
	return r.Status == StatusFailed || r.Status == StatusBroken
}

// DisplayName falls back to the ID when the source did not supply a name.
func (r Record) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Dedupe returns records with duplicate IDs removed. The first occurrence of
// an ID wins and arrival order is preserved. The input is not modified.
func Dedupe(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

// Counts tallies records by status.
func Counts(records []Record) map[Status]int {
	counts := make(map[Status]int)
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}
