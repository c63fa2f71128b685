package extract

// Record is one structured reset procedure entry. Field names follow the
// review tool's database schema; the underscore-prefixed fields are
// internal provenance kept for debugging and merge auditing.
type Record struct {
	ID             string   `json:"id"`
	Aircraft       []string `json:"aircraft"`
	ECAMMessages   []string `json:"ecamMessages"`
	ATA            string   `json:"ata"`
	Computer       string   `json:"computer"`
	ResetProcedure string   `json:"resetProcedure"`
	Notes          string   `json:"notes"`
	Warnings       []string `json:"warnings"`
	Cautions       []string `json:"cautions"`
	CBTable        []CBRow  `json:"cbTable"`
	SourcePage     int      `json:"_sourcePage"`
	FSNRaw         string   `json:"_fsnRaw"`
}
