package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual copy of a board, one glyph per cell and one line
// per row:
//
//	O  hidden mine           #  hidden safe cell
//	F  flagged mine          f  flagged safe cell
//	Q  maybe-flagged mine    q  maybe-flagged safe cell
//	A  auto-flagged mine     .  revealed safe cell
//	*  exploded mine         x  misflagged safe cell
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("loading board snapshot: %w", err)
	}
	return &snapshot, nil
}

func (board *Board) serializeCell(p Point) byte {
	field := board.field.Cell(p)
	state := board.view.State(p)

	if field.mine {
		switch {
		case field.kind == FieldExploded:
			return '*'
		case state == FlaggedCertain:
			return 'F'
		case state == FlaggedMaybe:
			return 'Q'
		case state == AutoFlagged:
			return 'A'
		default:
			return 'O'
		}
	}

	switch {
	case field.kind == FieldMisflagged:
		return 'x'
	case state == FlaggedCertain:
		return 'f'
	case state == FlaggedMaybe:
		return 'q'
	case state == Revealed:
		return '.'
	default:
		return '#'
	}
}

// BoardSnapshot captures the current board, mines included.
func (session *Session) BoardSnapshot() *BoardSnapshot {
	board := session.board
	rows := make([]string, board.grid.Rows)
	for y := range rows {
		var row strings.Builder
		for x := 0; x < board.grid.Columns; x++ {
			row.WriteByte(board.serializeCell(Point{X: x, Y: y}))
		}
		rows[y] = row.String()
	}

	return &BoardSnapshot{
		Seed:            session.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) parse() (Grid, [][]byte, error) {
	lines := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	rows := make([][]byte, len(lines))
	for y, line := range lines {
		rows[y] = []byte(strings.TrimSpace(line))
	}

	grid := Grid{Rows: len(rows), Columns: len(rows[0])}
	if grid.Columns == 0 {
		return grid, nil, fmt.Errorf("board snapshot is empty")
	}

	for y, row := range rows {
		if len(row) != grid.Columns {
			return grid, nil, fmt.Errorf("board snapshot row %d has %d cells, expected %d", y, len(row), grid.Columns)
		}
		for x, c := range row {
			if !strings.ContainsRune("OFQA*#fq.x", rune(c)) {
				return grid, nil, fmt.Errorf("board snapshot cell (%d, %d) has unknown glyph %q", x, y, c)
			}
		}
	}

	return grid, rows, nil
}

// NewSession starts a session on the snapshot's minefield. When fresh is
// set every cell starts hidden; otherwise flags and revealed cells are
// restored and the outcome is recomputed.
func (snapshot *BoardSnapshot) NewSession(fresh bool) (*Session, error) {
	grid, rows, err := snapshot.parse()
	if err != nil {
		return nil, err
	}

	var mines []Point
	for y, row := range rows {
		for x, c := range row {
			if strings.IndexByte("OFQA*", c) >= 0 {
				mines = append(mines, Point{X: x, Y: y})
			}
		}
	}

	field, err := NewMinefield(grid, mines)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(grid.Rows, grid.Columns, len(mines), WithMinefield(field), WithSeed(snapshot.Seed))
	if err != nil {
		return nil, err
	}

	if !fresh {
		board := session.board
		for y, row := range rows {
			for x, c := range row {
				board.restoreCell(Point{X: x, Y: y}, c)
			}
		}
		board.state = board.checkOutcome()
	}

	return session, nil
}

func (board *Board) restoreCell(p Point, c byte) {
	switch c {
	case 'F', 'f', 'x':
		board.view.setState(p, FlaggedCertain)
	case 'Q', 'q':
		board.view.setState(p, FlaggedMaybe)
	case 'A':
		board.view.setState(p, AutoFlagged)
	case '*':
		board.field.explode(p)
		board.lost = true
	case '.':
		board.open(p)
	}
}
