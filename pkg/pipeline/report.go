package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report summarizes one extraction run for operators and CI logs.
type Report struct {
	Source      string `yaml:"source"`
	Output      string `yaml:"output"`
	Pages       int    `yaml:"pages"`
	Blocks      int    `yaml:"blocks"`
	Written     int    `yaml:"written"`
	Skipped     int    `yaml:"skipped"`
	Merged      bool   `yaml:"merged"`
	NewEntries  int    `yaml:"new_entries,omitempty"`
	KeptEntries int    `yaml:"kept_entries,omitempty"`
	GeneratedAt string `yaml:"generated_at"`
}

// NewReport creates a report stamped with the current time.
func NewReport(source, output string) *Report {
	return &Report{
		Source:      source,
		Output:      output,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// WriteYAML writes the report to the given path.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Summary renders the end-of-run text. Extraction is best-effort, so the
// summary always closes with the manual review recommendation.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Wrote %d entries to %s (%d blocks skipped)\n", r.Written, r.Output, r.Skipped)
	if r.Merged {
		fmt.Fprintf(&b, "Merged: %d new + %d existing = %d total\n", r.NewEntries, r.KeptEntries, r.Written)
	}
	b.WriteString("\nREVIEW RECOMMENDED:\n")
	b.WriteString("  1. Open the admin panel and load the generated database\n")
	b.WriteString("  2. Check each entry for correct ECAM messages, procedures, and CB tables\n")
	b.WriteString("  3. Export the corrected database and commit it\n")

	return b.String()
}
