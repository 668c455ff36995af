package models

// ImportSummary is the only batch-level output of a policy import run.
// Rows with neither a customer name nor a policy number are no-ops and are
// excluded from every counter.
type ImportSummary struct {
	Succeeded int `json:"succeeded"`
	Errored   int `json:"errored"`
	Skipped   int `json:"skipped"`
}

func (s ImportSummary) Total() int {
	return s.Succeeded + s.Errored + s.Skipped
}
