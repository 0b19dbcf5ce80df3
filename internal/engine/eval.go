package engine

import (
	"math"

	"checkers/internal/checkers"
)

const (
	// saturating extremes returned for decided positions
	ScoreMax = math.MaxInt32
	ScoreMin = math.MinInt32
)

const (
	DefaultPawnWeight  = 1
	DefaultQueenWeight = 3
)

// Estimator scores a board from the maximizing color's point of view.
// With checkEndgame set, a position where one side has lost scores
// ScoreMax or ScoreMin instead of a material count.
type Estimator interface {
	Estimate(b checkers.Board, maximizing checkers.Color, checkEndgame bool) int
}

// CountEstimator counts material: pawns and queens weigh independently.
type CountEstimator struct {
	PawnWeight  int
	QueenWeight int
}

func NewCountEstimator(pawnWeight, queenWeight int) *CountEstimator {
	return &CountEstimator{PawnWeight: pawnWeight, QueenWeight: queenWeight}
}

func (e *CountEstimator) Estimate(b checkers.Board, maximizing checkers.Color, checkEndgame bool) int {
	if checkEndgame {
		// White is looked at first when both sides are stuck.
		if checkers.HasGameEnded(b, checkers.White) {
			return extreme(maximizing == checkers.Black)
		}
		if checkers.HasGameEnded(b, checkers.Black) {
			return extreme(maximizing == checkers.White)
		}
	}

	// White positive, Black negative
	score := 0
	for _, cell := range b.All() {
		p, ok := cell.Piece()
		if !ok {
			continue
		}
		w := e.PawnWeight
		if p.Rank == checkers.Queen {
			w = e.QueenWeight
		}
		if p.Color == checkers.White {
			score += w
		} else {
			score -= w
		}
	}
	if maximizing == checkers.Black {
		return -score
	}
	return score
}

func extreme(win bool) int {
	if win {
		return ScoreMax
	}
	return ScoreMin
}
