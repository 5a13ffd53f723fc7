package domain

// Record modes.
const (
	ModeSolve     = "solve"
	ModeChallenge = "challenge"
)

// Record is an immutable snapshot of one solve or challenge outcome. It is
// created only after a successful solve or a verified challenge completion
// and appended, never edited, to the history log.
type Record struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // "2006-01-02 15:04:05"
	Mode      string `json:"mode"`

	// Puzzle holds the clue grid in challenge mode; empty otherwise.
	Puzzle Grid `json:"puzzle,omitempty"`
	// Input holds the user-provided cells: clues typed in for a direct
	// solve, or the user's answers in a challenge.
	Input Grid `json:"input"`
	// Result is the full solution grid.
	Result Grid `json:"result"`

	Alphabet Alphabet `json:"symbols"`
	K        int      `json:"size"`

	// Challenge metadata.
	Difficulty string `json:"difficulty,omitempty"`
	Elapsed    string `json:"time,omitempty"` // minutes:seconds
}
