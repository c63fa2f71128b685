package database

// Stats aggregates counts over a document for the stats command.
type Stats struct {
	TotalMessages int
	ByAircraft    map[string]int
	ByATA         map[string]int
	WithProcedure int
	WithCBTable   int
	Warnings      int
	Cautions      int
}

// Stats computes aggregate statistics across all messages.
func (d *Document) Stats() *Stats {
	stats := &Stats{
		ByAircraft: make(map[string]int),
		ByATA:      make(map[string]int),
	}

	for _, rec := range d.Messages {
		stats.TotalMessages++
		for _, aircraft := range rec.Aircraft {
			stats.ByAircraft[aircraft]++
		}
		stats.ByATA[rec.ATA]++
		if rec.ResetProcedure != "" {
			stats.WithProcedure++
		}
		if len(rec.CBTable) > 0 {
			stats.WithCBTable++
		}
		stats.Warnings += len(rec.Warnings)
		stats.Cautions += len(rec.Cautions)
	}

	return stats
}
