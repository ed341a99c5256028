package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

type level struct {
	Rows, Columns, NumMines int
}

var levels = map[string]level{
	"easy":   {Rows: 10, Columns: 10, NumMines: 15},
	"medium": {Rows: 15, Columns: 15, NumMines: 45},
	"hard":   {Rows: 20, Columns: 20, NumMines: 100},
}

// levelValue is the --level flag; it only accepts the names in levels.
type levelValue string

var _ pflag.Value = (*levelValue)(nil)

func (levelVal *levelValue) String() string {
	return string(*levelVal)
}

func (levelVal *levelValue) Set(value string) error {
	if _, isValid := levels[value]; isValid {
		*levelVal = levelValue(value)
		return nil
	} else {
		return fmt.Errorf("invalid level")
	}
}

func (levelVal *levelValue) Type() string {
	return "level"
}
