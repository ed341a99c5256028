package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/they4kman/textsweep/director/random"
	"github.com/they4kman/textsweep/game"
	"github.com/they4kman/textsweep/util/collections"
)

// Director plays moves it can deduce from the revealed numbers, falling back
// to the least likely mine, and finally to a random cell.
type Director struct {
	session *game.Session
	random  random.Director
}

// Observation states that numMines of the hidden cells around origin are
// mines.
type Observation struct {
	origin   game.Point
	numMines int
	cells    []game.Point
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range observation.cells {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.random.Init(session)
}

func (director *Director) Act() (game.MoveResult, error) {
	observations := director.observe()

	actors := []func([]*Observation) (game.MoveResult, bool, error){
		director.actDeliberate,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if result, acted, err := actor(observations); acted || err != nil {
			return result, err
		}
	}

	return director.random.Act()
}

// observe builds one observation per revealed number that still has hidden
// cells around it. Flagged neighbours are taken to be mines.
func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.session.Cells() {
		if !cell.IsRevealed() || cell.NumMines() == 0 {
			continue
		}

		observation := &Observation{origin: cell.Point(), numMines: cell.NumMines()}
		for _, neighbor := range cell.Neighbors() {
			switch {
			case neighbor.IsFlagged():
				observation.numMines--
			case neighbor.State() == game.Hidden:
				observation.cells = append(observation.cells, neighbor.Point())
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// actDeliberate flags cells that must be mines and reveals cells that must
// be safe.
func (director *Director) actDeliberate(observations []*Observation) (game.MoveResult, bool, error) {
	for _, observation := range observations {
		if observation.numMines == len(observation.cells) {
			// No flags left to place
			if director.session.RemainingMines() <= 0 {
				continue
			}
			cell := observation.cells[0]
			result, err := director.session.ToggleFlag(cell.X, cell.Y)
			return result, true, err
		} else if observation.numMines == 0 {
			cell := observation.cells[0]
			result, err := director.session.Reveal(cell.X, cell.Y)
			return result, true, err
		}
	}
	return game.MoveResult{}, false, nil
}

// actLowestProbability reveals the cell least likely to be a mine across all
// observations, judging each cell by its most pessimistic observation.
func (director *Director) actLowestProbability(observations []*Observation) (game.MoveResult, bool, error) {
	cellProbabilities := make(map[game.Point]float32)
	var cells []game.Point

	for _, observation := range observations {
		probability := observation.MineProbability()

		for _, cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability {
				cells = append(cells, cell)
			}
			if !hasPastProbability || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	lowestProbability := float32(math.Inf(1))
	var lowestCell game.Point
	for _, cell := range cells {
		if probability := cellProbabilities[cell]; probability < lowestProbability {
			lowestProbability = probability
			lowestCell = cell
		}
	}

	if len(cells) == 0 {
		return game.MoveResult{}, false, nil
	}

	// Cells with no observations are only picked at random
	if director.unobservedHidden(collections.NewSet(cells...)) && lowestProbability >= 0.5 {
		return game.MoveResult{}, false, nil
	}

	result, err := director.session.Reveal(lowestCell.X, lowestCell.Y)
	return result, true, err
}

// unobservedHidden reports whether any hidden cell lies outside observed.
func (director *Director) unobservedHidden(observed collections.Set[game.Point]) bool {
	for _, cell := range director.session.Cells() {
		if cell.State() == game.Hidden && !observed.Contains(cell.Point()) {
			return true
		}
	}
	return false
}
