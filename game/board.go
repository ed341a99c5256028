package game

// MoveResult describes the effect of a single accepted move.
type MoveResult struct {
	Outcome Outcome
	// Newly revealed cells, the requested cell first.
	Revealed []Point
	// Mines flagged by the engine during the move.
	AutoFlagged    []Point
	RemainingMines int
}

// Board owns the minefield and the player view, and is the only code that
// writes to either. Both grids are always updated in the same call.
type Board struct {
	grid  Grid
	field *Minefield
	view  *PlayerView

	state Outcome
	// Set when a mine was opened directly.
	lost bool
}

func newBoard(field *Minefield) *Board {
	return &Board{
		grid:  field.grid,
		field: field,
		view:  newPlayerView(field.grid),
		state: Continue,
	}
}

func (board *Board) Grid() Grid {
	return board.grid
}

func (board *Board) Field() *Minefield {
	return board.field
}

func (board *Board) View() *PlayerView {
	return board.view
}

func (board *Board) Outcome() Outcome {
	return board.state
}

// RemainingMines is the total number of mines minus every flagged cell.
// It is recomputed from the player view on each call and may be negative.
func (board *Board) RemainingMines() int {
	return board.field.numMines - board.view.NumFlags()
}

func (board *Board) checkMove(p Point) error {
	if board.state.IsTerminal() {
		return GameOverError{Outcome: board.state}
	}
	if !board.grid.Contains(p) {
		return OutOfBoundsError{Point: p, Grid: board.grid}
	}
	return nil
}

// open reveals a non-mine cell in both grids and returns its count.
func (board *Board) open(p Point) int {
	count := board.field.open(p)
	board.view.reveal(p, count)
	return count
}

func (board *Board) reveal(p Point) (MoveResult, error) {
	if err := board.checkMove(p); err != nil {
		return MoveResult{}, err
	}

	switch board.view.State(p) {
	case FlaggedCertain, FlaggedMaybe:
		return MoveResult{}, AlreadyFlaggedError{Point: p}
	case Revealed, AutoFlagged:
		return MoveResult{}, AlreadyOpenError{Point: p}
	}

	if board.field.IsMine(p) {
		board.field.explode(p)
		board.lost = true
		board.state = board.checkOutcome()
		return board.result(MoveResult{}), nil
	}

	move := MoveResult{Revealed: []Point{p}}
	if count := board.open(p); count == 0 {
		move.Revealed = append(move.Revealed, board.flood(p)...)
	} else {
		for _, neighbor := range board.grid.Neighbors(p) {
			if board.autoFlag(neighbor) {
				move.AutoFlagged = append(move.AutoFlagged, neighbor)
			}
		}
	}

	board.state = board.checkOutcome()
	return board.result(move), nil
}

// toggleFlag flags or unflags p. flavour is FlaggedCertain for a plain flag
// and FlaggedMaybe for an unsure one; switching a certain flag to maybe keeps
// the cell flagged.
func (board *Board) toggleFlag(p Point, flavour ViewState) (MoveResult, error) {
	if err := board.checkMove(p); err != nil {
		return MoveResult{}, err
	}

	switch state := board.view.State(p); state {
	case Revealed, AutoFlagged:
		return MoveResult{}, AlreadyOpenError{Point: p}
	case Hidden:
		// Checked against the count before the new flag is placed.
		if remaining := board.RemainingMines(); remaining <= 0 {
			return MoveResult{}, FlagBudgetExceededError{Point: p, Remaining: remaining}
		}
		board.view.setState(p, flavour)
	default:
		if state == FlaggedCertain && flavour == FlaggedMaybe {
			board.view.setState(p, FlaggedMaybe)
		} else {
			board.view.setState(p, Hidden)
		}
	}

	board.state = board.checkOutcome()
	return board.result(MoveResult{}), nil
}

// checkOutcome decides the state of the game after a move. When every mine
// is accounted for, flags on non-mines are marked in the minefield and the
// game ends in a Mistake instead of a Win.
func (board *Board) checkOutcome() Outcome {
	if board.lost {
		return Loss
	}
	if board.RemainingMines() != 0 {
		return Continue
	}

	outcome := Win
	for _, p := range board.view.Flagged() {
		if !board.field.IsMine(p) {
			board.field.misflag(p)
			outcome = Mistake
		}
	}
	return outcome
}

func (board *Board) result(move MoveResult) MoveResult {
	move.Outcome = board.state
	move.RemainingMines = board.RemainingMines()
	return move
}
