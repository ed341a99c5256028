package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/they4kman/textsweep/director/random"
	"github.com/they4kman/textsweep/game"
)

type moveKind int

const (
	moveReveal moveKind = iota
	moveFlag
	moveMaybe
)

var errBadInput = errors.New(`enter a column and a row, optionally followed by "!" or "?"`)

func parseMove(line string) (x, y int, kind moveKind, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, errBadInput
	}
	if x, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, errBadInput
	}
	if y, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, errBadInput
	}

	if len(fields) == 3 {
		switch fields[2] {
		case "!":
			kind = moveFlag
		case "?":
			kind = moveMaybe
		default:
			return 0, 0, 0, errBadInput
		}
	}
	return x, y, kind, nil
}

func printStatus(out io.Writer, session *game.Session) {
	render(out, session.Snapshot())
	fmt.Fprintf(out, "%d mines remaining\n", session.RemainingMines())
}

func printOutcome(out io.Writer, outcome game.Outcome) {
	switch outcome {
	case game.Win:
		fmt.Fprintln(out, "Congratulations! You won!")
	case game.Loss:
		fmt.Fprintln(out, "Boom! You hit a mine.")
	case game.Mistake:
		fmt.Fprintln(out, "Every mine is flagged, but some flags are wrong.")
	}
}

// play reads moves from in until the game ends or in is exhausted.
func play(session *game.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	printStatus(out, session)
	for !session.IsTerminal() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		x, y, kind, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch kind {
		case moveFlag:
			_, err = session.ToggleFlag(x, y)
		case moveMaybe:
			_, err = session.ToggleMaybe(x, y)
		default:
			_, err = session.Reveal(x, y)
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		printStatus(out, session)
	}

	printOutcome(out, session.Outcome())
	return nil
}

// direct lets the director play the session to the end.
func direct(session *game.Session, director game.Director, out io.Writer) error {
	printStatus(out, session)
	for !session.IsTerminal() {
		result, err := director.Act()
		if errors.Is(err, random.ErrNoMoves) {
			break
		} else if err != nil {
			return err
		}

		fmt.Fprintf(out, "revealed %d cells\n", len(result.Revealed))
		printStatus(out, session)
	}

	printOutcome(out, session.Outcome())
	return nil
}
