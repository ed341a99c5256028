package game

import "fmt"

// ConfigurationError is returned when a board cannot be created from the
// requested dimensions and mines.
type ConfigurationError struct {
	Rows, Columns, Mines int
	Reason               string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid board %dx%d with %d mines: %s", e.Columns, e.Rows, e.Mines, e.Reason)
}

type OutOfBoundsError struct {
	Point Point
	Grid  Grid
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell %v is outside the %dx%d board", e.Point, e.Grid.Columns, e.Grid.Rows)
}

type AlreadyOpenError struct {
	Point Point
}

func (e AlreadyOpenError) Error() string {
	return fmt.Sprintf("cell %v is already open", e.Point)
}

// AlreadyFlaggedError is returned when revealing a flagged cell; it must be
// unflagged first.
type AlreadyFlaggedError struct {
	Point Point
}

func (e AlreadyFlaggedError) Error() string {
	return fmt.Sprintf("cell %v is flagged", e.Point)
}

// FlagBudgetExceededError is returned when placing a new flag while no mines
// remain unaccounted for.
type FlagBudgetExceededError struct {
	Point     Point
	Remaining int
}

func (e FlagBudgetExceededError) Error() string {
	return fmt.Sprintf("cannot flag %v: %d mines remaining", e.Point, e.Remaining)
}

type GameOverError struct {
	Outcome Outcome
}

func (e GameOverError) Error() string {
	return fmt.Sprintf("game is over (%v)", e.Outcome)
}
