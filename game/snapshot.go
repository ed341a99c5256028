package game

// Snapshot is the visible state of every cell, indexed [row][column].
type Snapshot [][]CellState

func (snapshot Snapshot) At(p Point) CellState {
	return snapshot[p.Y][p.X]
}

// Snapshot returns what the player can see. Once the game is over, mines
// that were never found and flags on safe cells are exposed as well.
func (session *Session) Snapshot() Snapshot {
	board := session.board
	snapshot := make(Snapshot, board.grid.Rows)
	for y := range snapshot {
		row := make([]CellState, board.grid.Columns)
		for x := range row {
			row[x] = board.cellState(Point{X: x, Y: y})
		}
		snapshot[y] = row
	}
	return snapshot
}

func (board *Board) cellState(p Point) CellState {
	field := board.field.Cell(p)
	switch field.kind {
	case FieldExploded:
		return MineLosing
	case FieldMisflagged:
		return FlagWrong
	}

	isOver := board.state.IsTerminal()

	switch board.view.State(p) {
	case Revealed:
		return CellState(board.view.Count(p))
	case FlaggedCertain, FlaggedMaybe, AutoFlagged:
		if isOver && !field.mine {
			return FlagWrong
		}
		switch board.view.State(p) {
		case FlaggedMaybe:
			return FlagMaybe
		case AutoFlagged:
			return FlagAuto
		default:
			return Flag
		}
	default:
		if isOver && field.mine {
			return MineUnrevealed
		}
		return Unrevealed
	}
}
