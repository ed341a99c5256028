package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Session is a single game: one board played move by move until it is won
// or lost. A Session is not safe for concurrent use.
type Session struct {
	board *Board
	seed  int64
}

type sessionOptions struct {
	seed  int64
	rand  *rand.Rand
	field *Minefield
}

type SessionOption func(*sessionOptions)

// WithSeed generates the minefield from a source seeded with seed.
func WithSeed(seed int64) SessionOption {
	return func(opts *sessionOptions) {
		opts.seed = seed
		opts.rand = nil
	}
}

// WithRand generates the minefield from r.
func WithRand(r *rand.Rand) SessionOption {
	return func(opts *sessionOptions) {
		opts.rand = r
	}
}

// WithMinefield plays on field instead of generating one. The field must
// match the requested dimensions and mine count.
func WithMinefield(field *Minefield) SessionOption {
	return func(opts *sessionOptions) {
		opts.field = field
	}
}

func NewSession(rows, columns, mineCount int, opts ...SessionOption) (*Session, error) {
	options := sessionOptions{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&options)
	}

	grid := Grid{Rows: rows, Columns: columns}
	field := options.field
	if field == nil {
		r := options.rand
		if r == nil {
			r = rand.New(rand.NewSource(options.seed))
		}

		var err error
		if field, err = GenerateMinefield(grid, mineCount, r); err != nil {
			return nil, err
		}
	} else if field.grid != grid || field.numMines != mineCount {
		return nil, ConfigurationError{
			Rows: rows, Columns: columns, Mines: mineCount,
			Reason: "minefield does not match the requested board",
		}
	}

	Log.WithFields(logrus.Fields{
		"rows":    rows,
		"columns": columns,
		"mines":   mineCount,
		"seed":    options.seed,
	}).Info("new game")

	return &Session{
		board: newBoard(field),
		seed:  options.seed,
	}, nil
}

func (session *Session) Reveal(x, y int) (MoveResult, error) {
	result, err := session.board.reveal(Point{X: x, Y: y})
	session.logMove("reveal", x, y, result, err)
	return result, err
}

// ToggleFlag flags a hidden cell, or unflags a flagged one.
func (session *Session) ToggleFlag(x, y int) (MoveResult, error) {
	result, err := session.board.toggleFlag(Point{X: x, Y: y}, FlaggedCertain)
	session.logMove("flag", x, y, result, err)
	return result, err
}

// ToggleMaybe marks a hidden or flagged cell as a possible mine, or clears
// the mark if it is already set.
func (session *Session) ToggleMaybe(x, y int) (MoveResult, error) {
	result, err := session.board.toggleFlag(Point{X: x, Y: y}, FlaggedMaybe)
	session.logMove("maybe", x, y, result, err)
	return result, err
}

func (session *Session) logMove(move string, x, y int, result MoveResult, err error) {
	fields := Log.WithFields(logrus.Fields{
		"move": move,
		"x":    x,
		"y":    y,
	})
	if err != nil {
		fields.WithError(err).Debug("move rejected")
		return
	}

	fields.WithFields(logrus.Fields{
		"outcome":     result.Outcome,
		"revealed":    len(result.Revealed),
		"autoFlagged": len(result.AutoFlagged),
		"remaining":   result.RemainingMines,
	}).Debug("move")

	if result.Outcome.IsTerminal() {
		Log.WithField("outcome", result.Outcome).Info("game over")
	}
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Grid() Grid {
	return session.board.grid
}

func (session *Session) NumMines() int {
	return session.board.field.numMines
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) RemainingMines() int {
	return session.board.RemainingMines()
}

func (session *Session) Outcome() Outcome {
	return session.board.state
}

func (session *Session) IsTerminal() bool {
	return session.board.state.IsTerminal()
}

// State returns the player's view of a cell and its count, which is -1
// unless the cell is revealed.
func (session *Session) State(x, y int) (ViewState, int, error) {
	p := Point{X: x, Y: y}
	if !session.board.grid.Contains(p) {
		return Hidden, -1, OutOfBoundsError{Point: p, Grid: session.board.grid}
	}
	return session.board.view.State(p), session.board.view.Count(p), nil
}
