package translate

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dkubicek/preklad"
)

// Item statuses in a batch report.
const (
	ItemStatusOK      = "ok"
	ItemStatusFailed  = "failed"
	ItemStatusSkipped = "skipped"
)

// ReportItem is the per-URL outcome of a batch run.
type ReportItem struct {
	URL       string `json:"url"`
	Status    string `json:"status"`
	OutputDir string `json:"outputDir,omitempty"`
	Warnings  int    `json:"warnings,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report summarizes a batch run. Items keep the input order.
type Report struct {
	Total      int          `json:"total"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	Items      []ReportItem `json:"items"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
}

// WriteFile writes the report as indented JSON to path.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return preklad.Errorf(preklad.EINTERNAL, "encode batch report: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return preklad.Errorf(preklad.EOUTPUT, "write batch report: %v", err)
	}
	return nil
}

// Summary returns a one-line human-readable summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d processed: %d ok, %d failed, %d skipped in %s",
		r.Total, r.Succeeded, r.Failed, r.Skipped,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
}
