package game

type viewCell struct {
	state ViewState
	count int
}

// PlayerView is what the player knows about the board.
type PlayerView struct {
	grid  Grid
	cells []viewCell
}

func newPlayerView(grid Grid) *PlayerView {
	return &PlayerView{
		grid:  grid,
		cells: make([]viewCell, grid.Size()),
	}
}

func (view *PlayerView) State(p Point) ViewState {
	return view.cells[view.grid.Index(p)].state
}

// Count returns the revealed neighbour count of p, or -1 if p is not revealed.
func (view *PlayerView) Count(p Point) int {
	cell := view.cells[view.grid.Index(p)]
	if cell.state != Revealed {
		return -1
	}
	return cell.count
}

// NumFlags counts cells flagged by the player or the engine.
func (view *PlayerView) NumFlags() int {
	numFlags := 0
	for _, cell := range view.cells {
		if cell.state.IsFlagged() {
			numFlags++
		}
	}
	return numFlags
}

// Flagged returns every flagged cell in row-major order.
func (view *PlayerView) Flagged() []Point {
	var flagged []Point
	for i, cell := range view.cells {
		if cell.state.IsFlagged() {
			flagged = append(flagged, view.grid.Point(i))
		}
	}
	return flagged
}

func (view *PlayerView) setState(p Point, state ViewState) {
	view.cells[view.grid.Index(p)] = viewCell{state: state}
}

func (view *PlayerView) reveal(p Point, count int) {
	view.cells[view.grid.Index(p)] = viewCell{state: Revealed, count: count}
}
