package domain

import (
	"fmt"
	"strings"
)

// Difficulty selects how large a fraction of a solved grid is cleared when
// carving a puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Interval returns the half-open removal-fraction range [low, high) for the
// tier.
func (d Difficulty) Interval() (low, high float64) {
	switch d {
	case Easy:
		return 0.40, 0.50
	case Hard:
		return 0.60, 0.70
	default:
		return 0.50, 0.60
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty accepts the tier names case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}
