package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/textsweep/game"
)

var glyphs = map[game.CellState]byte{
	game.Unrevealed:     '#',
	game.Empty:          '.',
	game.Flag:           '!',
	game.FlagMaybe:      '?',
	game.FlagAuto:       '!',
	game.FlagWrong:      'X',
	game.MineUnrevealed: '*',
	game.MineLosing:     '@',
}

func glyph(state game.CellState) byte {
	if state.IsNumber() && state != game.Empty {
		return byte('0' + int(state))
	}
	return glyphs[state]
}

// render writes the snapshot with column numbers on top and row numbers on
// the left, both modulo 10.
func render(out io.Writer, snapshot game.Snapshot) {
	if len(snapshot) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("   ")
	for x := range snapshot[0] {
		fmt.Fprintf(&b, " %d", x%10)
	}
	b.WriteString("\n")

	for y, row := range snapshot {
		fmt.Fprintf(&b, "%3d", y)
		for _, state := range row {
			b.WriteByte(' ')
			b.WriteByte(glyph(state))
		}
		b.WriteString("\n")
	}

	io.WriteString(out, b.String())
}
