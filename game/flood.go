package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/textsweep/util/collections"
)

// flood opens the region of zero-count cells connected to origin, plus its
// border of numbered cells, and returns the cells it opened in visit order.
// origin must already be open with a count of zero. Flagged cells are left
// alone.
func (board *Board) flood(origin Point) []Point {
	var opened []Point

	visited := make(collections.Set[Point])
	visited.Add(origin)

	visitQueue := deque.New[Point]()
	visitQueue.PushBack(origin)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()

		for _, neighbor := range board.grid.Neighbors(cell) {
			if visited.Contains(neighbor) || board.view.State(neighbor) != Hidden {
				continue
			}
			visited.Add(neighbor)

			// A neighbour of a zero cell is never a mine
			opened = append(opened, neighbor)
			if board.open(neighbor) == 0 {
				visitQueue.PushBack(neighbor)
			}
		}
	}

	return opened
}
