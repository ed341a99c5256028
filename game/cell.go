package game

import (
	"fmt"
)

// Cell is a read-only handle on one cell of a session, as the player sees it.
type Cell struct {
	board *Board
	p     Point
}

// CellAt returns the cell at (x, y), or nil if it is outside the board.
func (session *Session) CellAt(x, y int) *Cell {
	p := Point{X: x, Y: y}
	if !session.board.grid.Contains(p) {
		return nil
	}
	return &Cell{board: session.board, p: p}
}

// Cells returns every cell of the board in row-major order.
func (session *Session) Cells() []*Cell {
	points := session.board.grid.Points()
	cells := make([]*Cell, len(points))
	for i, p := range points {
		cells[i] = &Cell{board: session.board, p: p}
	}
	return cells
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.p.X, cell.p.Y)
}

func (cell *Cell) X() int {
	return cell.p.X
}

func (cell *Cell) Y() int {
	return cell.p.Y
}

func (cell *Cell) Point() Point {
	return cell.p
}

func (cell *Cell) State() ViewState {
	return cell.board.view.State(cell.p)
}

func (cell *Cell) IsRevealed() bool {
	return cell.State() == Revealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.State().IsFlagged()
}

// NumMines is the revealed neighbour count, or -1 while the cell is not
// revealed.
func (cell *Cell) NumMines() int {
	return cell.board.view.Count(cell.p)
}

func (cell *Cell) Neighbors() []*Cell {
	points := cell.board.grid.Neighbors(cell.p)
	neighbors := make([]*Cell, len(points))
	for i, p := range points {
		neighbors[i] = &Cell{board: cell.board, p: p}
	}
	return neighbors
}
