package game

import (
	"math/rand"
)

// FieldCell is the ground truth of a single cell.
type FieldCell struct {
	mine  bool
	kind  FieldKind
	count int
}

func (cell FieldCell) IsMine() bool {
	return cell.mine
}

func (cell FieldCell) Kind() FieldKind {
	return cell.kind
}

// Count is the cached number of neighbouring mines. It is only meaningful
// once the cell is FieldSafe.
func (cell FieldCell) Count() int {
	return cell.count
}

// Minefield holds where the mines are and what has been opened.
type Minefield struct {
	grid     Grid
	numMines int
	cells    []FieldCell
}

func checkDimensions(grid Grid, mineCount int) error {
	err := ConfigurationError{Rows: grid.Rows, Columns: grid.Columns, Mines: mineCount}
	switch {
	case grid.Rows < 1 || grid.Columns < 1:
		err.Reason = "board must have at least one row and one column"
	case mineCount < 0:
		err.Reason = "mine count cannot be negative"
	case mineCount >= grid.Size():
		err.Reason = "mine count must be less than the number of cells"
	default:
		return nil
	}
	return err
}

func emptyMinefield(grid Grid) *Minefield {
	return &Minefield{
		grid:  grid,
		cells: make([]FieldCell, grid.Size()),
	}
}

// GenerateMinefield places exactly mineCount mines at distinct random cells.
func GenerateMinefield(grid Grid, mineCount int, r *rand.Rand) (*Minefield, error) {
	if err := checkDimensions(grid, mineCount); err != nil {
		return nil, err
	}

	field := emptyMinefield(grid)
	for field.numMines < mineCount {
		p := Point{X: r.Intn(grid.Columns), Y: r.Intn(grid.Rows)}
		cell := &field.cells[grid.Index(p)]
		if !cell.mine {
			cell.mine = true
			field.numMines++
		}
	}

	return field, nil
}

// NewMinefield builds a minefield with mines at exactly the given points.
func NewMinefield(grid Grid, mines []Point) (*Minefield, error) {
	if err := checkDimensions(grid, len(mines)); err != nil {
		return nil, err
	}

	field := emptyMinefield(grid)
	for _, p := range mines {
		if !grid.Contains(p) {
			return nil, ConfigurationError{
				Rows: grid.Rows, Columns: grid.Columns, Mines: len(mines),
				Reason: "mine " + p.String() + " is outside the board",
			}
		}
		cell := &field.cells[grid.Index(p)]
		if cell.mine {
			return nil, ConfigurationError{
				Rows: grid.Rows, Columns: grid.Columns, Mines: len(mines),
				Reason: "mine " + p.String() + " is placed twice",
			}
		}
		cell.mine = true
		field.numMines++
	}

	return field, nil
}

func (field *Minefield) Grid() Grid {
	return field.grid
}

func (field *Minefield) NumMines() int {
	return field.numMines
}

func (field *Minefield) Cell(p Point) FieldCell {
	return field.cells[field.grid.Index(p)]
}

func (field *Minefield) IsMine(p Point) bool {
	return field.cells[field.grid.Index(p)].mine
}

// Mines returns the positions of every mine in row-major order.
func (field *Minefield) Mines() []Point {
	mines := make([]Point, 0, field.numMines)
	for i, cell := range field.cells {
		if cell.mine {
			mines = append(mines, field.grid.Point(i))
		}
	}
	return mines
}

// NeighborMineCount counts mines around p, whether or not p is open.
func (field *Minefield) NeighborMineCount(p Point) int {
	count := 0
	for _, neighbor := range field.grid.Neighbors(p) {
		if field.IsMine(neighbor) {
			count++
		}
	}
	return count
}

// open caches the neighbour count of a non-mine cell and returns it.
func (field *Minefield) open(p Point) int {
	cell := &field.cells[field.grid.Index(p)]
	if cell.kind != FieldSafe {
		cell.count = field.NeighborMineCount(p)
		cell.kind = FieldSafe
	}
	return cell.count
}

func (field *Minefield) explode(p Point) {
	field.cells[field.grid.Index(p)].kind = FieldExploded
}

func (field *Minefield) misflag(p Point) {
	field.cells[field.grid.Index(p)].kind = FieldMisflagged
}
