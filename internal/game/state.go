package game

import (
	"time"

	"checkers/internal/checkers"
)

// GameState is a snapshot of a registered game.
type GameState struct {
	ID         string
	White      string
	Black      string
	Pos        *checkers.Position
	Plies      int
	Outcome    Outcome
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt time.Time
}

func (s GameState) Finished() bool { return !s.FinishedAt.IsZero() }
