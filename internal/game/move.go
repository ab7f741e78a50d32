package game

import "github.com/lox/matchsticks/internal/minimax"

// Move is the number of sticks taken in one turn, 1 to minimax.MaxTake.
type Move int

// IsLegal reports whether the move can be played with count sticks left.
func (m Move) IsLegal(count int) bool {
	return m >= 1 && int(m) <= minimax.MaxTake && int(m) <= count
}

// ValidMoves returns the moves playable with count sticks remaining, in
// ascending order. Empty when the game is over.
func ValidMoves(count int) []Move {
	moves := make([]Move, 0, minimax.MaxTake)
	for take := 1; take <= minimax.MaxTake && take <= count; take++ {
		moves = append(moves, Move(take))
	}
	return moves
}
