package game

import "fmt"

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid describes a Rows x Columns lattice of cells.
type Grid struct {
	Rows, Columns int
}

func (grid Grid) Size() int {
	return grid.Rows * grid.Columns
}

func (grid Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < grid.Columns && p.Y < grid.Rows
}

// Index returns the row-major index of p. p must be inside the grid.
func (grid Grid) Index(p Point) int {
	return p.Y*grid.Columns + p.X
}

func (grid Grid) Point(idx int) Point {
	return Point{X: idx % grid.Columns, Y: idx / grid.Columns}
}

// Neighbors returns the in-bounds cells of the 3x3 block around p, excluding
// p itself. The order is stable: the row above from left to right, then the
// left and right cells, then the row below from left to right.
func (grid Grid) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbor := Point{X: p.X + dx, Y: p.Y + dy}
			if grid.Contains(neighbor) {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// Points returns every cell of the grid in row-major order.
func (grid Grid) Points() []Point {
	points := make([]Point, grid.Size())
	for i := range points {
		points[i] = grid.Point(i)
	}
	return points
}
