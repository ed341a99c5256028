package random

import (
	"errors"
	"math/rand"

	"github.com/they4kman/textsweep/game"
)

var ErrNoMoves = errors.New("no hidden cells left to reveal")

// Director reveals hidden cells in a random order, one per Act.
type Director struct {
	session *game.Session
	cells   []*game.Cell
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.cells = session.Cells()

	r := rand.New(rand.NewSource(session.Seed()))
	r.Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() (game.MoveResult, error) {
	for len(director.cells) > 0 {
		cell := director.cells[0]
		director.cells = director.cells[1:]

		if cell.State() == game.Hidden {
			return director.session.Reveal(cell.X(), cell.Y())
		}
	}
	return game.MoveResult{}, ErrNoMoves
}
