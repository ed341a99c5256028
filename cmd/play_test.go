package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/textsweep/director/random"
	"github.com/they4kman/textsweep/game"
)

func TestMain(m *testing.M) {
	game.Log.SetOutput(io.Discard)
	m.Run()
}

func newFixture(t *testing.T, board string) *game.Session {
	t.Helper()
	session, err := (&game.BoardSnapshot{Seed: 1, SerializedBoard: board}).NewSession(true)
	require.NoError(t, err)
	return session
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line  string
		x, y  int
		kind  moveKind
		valid bool
	}{
		{line: "3 4", x: 3, y: 4, kind: moveReveal, valid: true},
		{line: "  0 12  ", x: 0, y: 12, kind: moveReveal, valid: true},
		{line: "5 2 !", x: 5, y: 2, kind: moveFlag, valid: true},
		{line: "5 2 ?", x: 5, y: 2, kind: moveMaybe, valid: true},
		{line: "5"},
		{line: "a 2"},
		{line: "1 b"},
		{line: "1 2 x"},
		{line: "1 2 ! 3"},
		{line: ""},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			x, y, kind, err := parseMove(test.line)
			if !test.valid {
				assert.ErrorIs(t, err, errBadInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.x, x)
			assert.Equal(t, test.y, y)
			assert.Equal(t, test.kind, kind)
		})
	}
}

func TestRender(t *testing.T) {
	snapshot := game.Snapshot{
		{game.Unrevealed, game.Empty, game.Number3},
		{game.Flag, game.FlagMaybe, game.FlagWrong},
		{game.MineLosing, game.MineUnrevealed, game.FlagAuto},
	}

	var out bytes.Buffer
	render(&out, snapshot)

	expected := "" +
		"    0 1 2\n" +
		"  0 # . 3\n" +
		"  1 ! ? X\n" +
		"  2 @ * !\n"
	assert.Equal(t, expected, out.String())
}

func TestPlay(t *testing.T) {
	session := newFixture(t, "O##")
	in := strings.NewReader("nonsense\n2 0\n2 0\n0 0 !\n")

	var out bytes.Buffer
	require.NoError(t, play(session, in, &out))

	output := out.String()
	assert.Contains(t, output, errBadInput.Error())
	assert.Contains(t, output, "cell (2, 0) is already open")
	assert.Contains(t, output, "0 mines remaining")
	assert.Contains(t, output, "Congratulations! You won!")
	assert.Equal(t, game.Win, session.Outcome())
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	session := newFixture(t, "O##")

	var out bytes.Buffer
	require.NoError(t, play(session, strings.NewReader("2 0\n"), &out))

	assert.False(t, session.IsTerminal())
	assert.Contains(t, out.String(), "1 mines remaining")
}

func TestPlayLoss(t *testing.T) {
	session := newFixture(t, "O##")

	var out bytes.Buffer
	require.NoError(t, play(session, strings.NewReader("0 0\n"), &out))

	assert.Equal(t, game.Loss, session.Outcome())
	assert.Contains(t, out.String(), "Boom!")
	assert.Contains(t, out.String(), "  0 @ # #\n")
}

func TestDirect(t *testing.T) {
	session, err := game.NewSession(6, 6, 5, game.WithSeed(8))
	require.NoError(t, err)

	director := &random.Director{}
	director.Init(session)

	var out bytes.Buffer
	require.NoError(t, direct(session, director, &out))
	assert.True(t, session.IsTerminal())
	assert.Contains(t, out.String(), "revealed")
}

func TestLoadGameConfigLevel(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("level", "")
	})

	viper.Set("level", "medium")
	gameConfig, err := loadGameConfig()
	require.NoError(t, err)
	assert.Equal(t, 15, gameConfig.Rows)
	assert.Equal(t, 15, gameConfig.Columns)
	assert.Equal(t, 45, gameConfig.NumMines)
	assert.Nil(t, gameConfig.Director)

	viper.Set("level", "extreme")
	_, err = loadGameConfig()
	assert.Error(t, err)
}

func TestLevelValue(t *testing.T) {
	var value levelValue
	assert.NoError(t, value.Set("hard"))
	assert.Equal(t, "hard", value.String())
	assert.Error(t, value.Set("extreme"))
	assert.Equal(t, "hard", value.String())
	assert.Equal(t, "level", value.Type())
}
