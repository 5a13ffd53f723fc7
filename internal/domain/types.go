package domain

// Cell is a 1-based index into the board's alphabet; 0 means empty.
type Cell uint8

// Role tags how a cell came to hold its value, independent of any rendering.
type Role uint8

const (
	RoleEmpty Role = iota
	RoleClue       // given by the puzzle, immutable to the solver of that puzzle
	RoleUser       // filled interactively
	RoleSolved     // filled by the engine
)

// MinBlockSize and MaxBlockSize bound the supported sub-grid sizes.
const (
	MinBlockSize = 2
	MaxBlockSize = 5
)

// Board holds an n×n grid, n = K². Cell values are alphabet indices so the
// engine never touches symbols; the Alphabet maps them at the boundary.
type Board struct {
	K     int      `json:"k"`
	Cells [][]Cell `json:"cells"`
	Roles [][]Role `json:"roles,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewBoard returns an empty board for block size k.
func NewBoard(k int) (*Board, error) {
	if k < MinBlockSize || k > MaxBlockSize {
		return nil, ErrBadBlockSize
	}
	n := k * k
	b := &Board{K: k, Cells: make([][]Cell, n), Roles: make([][]Role, n)}
	for i := 0; i < n; i++ {
		b.Cells[i] = make([]Cell, n)
		b.Roles[i] = make([]Role, n)
	}
	return b, nil
}

// Size returns the grid dimension n = K².
func (b *Board) Size() int { return b.K * b.K }

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	n := b.Size()
	out := &Board{K: b.K, Cells: make([][]Cell, n), Roles: make([][]Role, n)}
	for i := 0; i < n; i++ {
		out.Cells[i] = make([]Cell, n)
		copy(out.Cells[i], b.Cells[i])
		out.Roles[i] = make([]Role, n)
		if b.Roles != nil && i < len(b.Roles) {
			copy(out.Roles[i], b.Roles[i])
		}
	}
	return out
}

// Equal reports cell-by-cell value equality. Roles are metadata and do not
// participate.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.K != o.K {
		return false
	}
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Filled counts non-empty cells.
func (b *Board) Filled() int {
	count := 0
	for _, row := range b.Cells {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Complete reports whether every cell holds a value.
func (b *Board) Complete() bool {
	return b.Filled() == b.Size()*b.Size()
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Symbol  string      `json:"symbol,omitempty"`
}

// Puzzle is a carved board together with the solution it was carved from.
// Created once by the generator and read-only afterward except for user
// fills in non-clue cells.
type Puzzle struct {
	ID         string      `json:"id"`
	Seed       int64       `json:"seed"`
	K          int         `json:"k"`
	Alphabet   Alphabet    `json:"alphabet"`
	Difficulty Difficulty  `json:"difficulty"`
	Board      *Board      `json:"board"`
	Removed    []CellCoord `json:"removed"`
	Solution   *Board      `json:"solution"`
	CreatedAt  int64       `json:"createdAt"`
}
