// Package pipeline sequences segmentation and block parsing over a whole
// document and assembles the run's output and report.
package pipeline

import (
	"fmt"

	"github.com/coolbeans/tsmreset/pkg/extract"
	"github.com/coolbeans/tsmreset/pkg/segment"
)

// Runner drives block parsing across all blocks of one run. A block whose
// parse fails is counted and skipped; the run itself never aborts on block
// content.
type Runner struct {
	// Verbose enables per-block progress lines through Progress.
	Verbose bool

	// Progress receives progress lines when Verbose is set. Defaults to
	// stdout printing when nil.
	Progress func(format string, args ...any)
}

// Run parses every block in order and returns the extracted records plus
// the number of skipped blocks.
func (r *Runner) Run(blocks []segment.Block) ([]extract.Record, int) {
	records := make([]extract.Record, 0, len(blocks))
	skipped := 0

	for i, block := range blocks {
		rec, err := extract.ParseBlock(block)
		if err != nil {
			skipped++
			r.progress("  [%d/%d] SKIP: %v", i+1, len(blocks), err)
			continue
		}
		records = append(records, *rec)
		r.progress("  [%d/%d] %s (ATA %s, p.%d)", i+1, len(blocks), truncate(rec.ECAMMessages[0], 50), rec.ATA, rec.SourcePage)
	}

	return records, skipped
}

func (r *Runner) progress(format string, args ...any) {
	if !r.Verbose {
		return
	}
	if r.Progress != nil {
		r.Progress(format, args...)
		return
	}
	fmt.Printf(format+"\n", args...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
