package model

// DefaultProgram is the certificate program label used when a record has none.
const DefaultProgram = "AI Opener Certificate"

// Participant represents one certificate recipient.
//
// Records are created by the importer and never mutated afterwards; the
// claimKey is a reserved secondary token whose consuming endpoint lives
// outside this service.
type Participant struct {
	ID       string `json:"id"`
	ClaimKey string `json:"claimKey"`
	Name     string `json:"name"`
	Date     string `json:"date"` // YYYY-MM-DD
	Program  string `json:"program"`
}

// ProgramName returns the display label for the participant's program.
func (p Participant) ProgramName() string {
	if p.Program == "" {
		return DefaultProgram
	}
	return p.Program
}
