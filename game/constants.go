package game

// CellState is the kind of a cell as shown to the player.
type CellState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagMaybe
	FlagAuto
	FlagWrong
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagMaybe,
	FlagAuto,
	FlagWrong,
	MineUnrevealed,
	MineLosing,
}

// IsNumber reports whether state is a revealed count, Empty included.
func (state CellState) IsNumber() bool {
	return state >= Empty && state <= Number8
}

// ViewState is the player's knowledge of a single cell.
type ViewState int

const (
	Hidden ViewState = iota
	FlaggedCertain
	FlaggedMaybe
	AutoFlagged
	Revealed
)

func (state ViewState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case FlaggedCertain:
		return "flagged"
	case FlaggedMaybe:
		return "maybe"
	case AutoFlagged:
		return "auto-flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// IsFlagged reports whether the cell counts against the remaining mines.
func (state ViewState) IsFlagged() bool {
	return state == FlaggedCertain || state == FlaggedMaybe || state == AutoFlagged
}

// FieldKind is the ground-truth status of a minefield cell.
type FieldKind int

const (
	FieldClosed FieldKind = iota
	FieldSafe
	FieldExploded
	FieldMisflagged
)

type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
	Mistake
)

func (outcome Outcome) String() string {
	switch outcome {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Mistake:
		return "mistake"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves are accepted.
func (outcome Outcome) IsTerminal() bool {
	return outcome != Continue
}
