package database

import "fmt"

// Validate checks the document against the invariants the review tool
// depends on and returns one problem string per violation. An empty result
// means the document is structurally sound; field content is still
// heuristic and needs human review regardless.
func (d *Document) Validate() []string {
	var problems []string

	if d.Version == "" {
		problems = append(problems, "document has no version")
	}

	seen := make(map[string]int, len(d.Messages))
	for i, rec := range d.Messages {
		if rec.ID == "" {
			problems = append(problems, fmt.Sprintf("message %d has an empty id", i))
		} else if prev, ok := seen[rec.ID]; ok {
			problems = append(problems, fmt.Sprintf("duplicate id %q (messages %d and %d)", rec.ID, prev, i))
		} else {
			seen[rec.ID] = i
		}

		if len(rec.Aircraft) == 0 {
			problems = append(problems, fmt.Sprintf("message %q applies to no aircraft", rec.ID))
		}
		if len(rec.ECAMMessages) == 0 {
			problems = append(problems, fmt.Sprintf("message %q has no ECAM messages", rec.ID))
		}

		if len(rec.CBTable) > 10 {
			problems = append(problems, fmt.Sprintf("message %q has %d CB rows (max 10)", rec.ID, len(rec.CBTable)))
		}
		fins := make(map[string]struct{}, len(rec.CBTable))
		for _, row := range rec.CBTable {
			if _, ok := fins[row.FIN]; ok {
				problems = append(problems, fmt.Sprintf("message %q repeats FIN %q in its CB table", rec.ID, row.FIN))
			}
			fins[row.FIN] = struct{}{}
		}
	}

	return problems
}
