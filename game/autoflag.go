package game

// autoFlag marks p as a mine if p is a hidden mine and every hidden cell
// around it is also a mine, so no safe cell next to it is left to open.
//
// This is a local check made only when a numbered neighbour is opened. It is
// not a solver, and mines that could be deduced from the wider board are left
// for the player.
func (board *Board) autoFlag(p Point) bool {
	if !board.field.IsMine(p) || board.view.State(p) != Hidden {
		return false
	}

	for _, neighbor := range board.grid.Neighbors(p) {
		if board.view.State(neighbor) == Hidden && !board.field.IsMine(neighbor) {
			return false
		}
	}

	board.view.setState(p, AutoFlagged)
	return true
}
