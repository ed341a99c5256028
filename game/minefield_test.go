package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMinefield(t *testing.T) {
	tests := []struct {
		name      string
		grid      Grid
		mineCount int
		valid     bool
	}{
		{name: "5x5(25)", grid: Grid{Rows: 5, Columns: 5}, mineCount: 25},
		{name: "5x5(26)", grid: Grid{Rows: 5, Columns: 5}, mineCount: 26},
		{name: "5x5(-1)", grid: Grid{Rows: 5, Columns: 5}, mineCount: -1},
		{name: "0x5(0)", grid: Grid{Rows: 0, Columns: 5}, mineCount: 0},
		{name: "5x5(24)", grid: Grid{Rows: 5, Columns: 5}, mineCount: 24, valid: true},
		{name: "5x5(0)", grid: Grid{Rows: 5, Columns: 5}, mineCount: 0, valid: true},
		{name: "1x3(1)", grid: Grid{Rows: 1, Columns: 3}, mineCount: 1, valid: true},
		{name: "16x30(99)", grid: Grid{Rows: 16, Columns: 30}, mineCount: 99, valid: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(1))
			field, err := GenerateMinefield(test.grid, test.mineCount, r)

			if !test.valid {
				var configErr ConfigurationError
				assert.ErrorAs(t, err, &configErr)
				assert.Nil(t, field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.mineCount, field.NumMines())
			assert.Len(t, field.Mines(), test.mineCount)
			for _, p := range test.grid.Points() {
				assert.Equal(t, FieldClosed, field.Cell(p).Kind())
			}
		})
	}
}

func TestGenerateMinefieldSeeded(t *testing.T) {
	grid := Grid{Rows: 9, Columns: 9}

	a, err := GenerateMinefield(grid, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := GenerateMinefield(grid, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.Mines(), b.Mines())
}

func TestNewMinefield(t *testing.T) {
	grid := Grid{Rows: 2, Columns: 2}

	field, err := NewMinefield(grid, []Point{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, field.NumMines())
	assert.True(t, field.IsMine(Point{1, 0}))
	assert.True(t, field.IsMine(Point{0, 1}))
	assert.False(t, field.IsMine(Point{0, 0}))

	var configErr ConfigurationError

	_, err = NewMinefield(grid, []Point{{1, 0}, {1, 0}})
	assert.ErrorAs(t, err, &configErr)

	_, err = NewMinefield(grid, []Point{{2, 0}})
	assert.ErrorAs(t, err, &configErr)

	_, err = NewMinefield(grid, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	assert.ErrorAs(t, err, &configErr)
}

func TestNeighborMineCount(t *testing.T) {
	field, err := NewMinefield(Grid{Rows: 3, Columns: 3}, []Point{{0, 0}, {2, 0}, {1, 2}})
	require.NoError(t, err)

	assert.Equal(t, 3, field.NeighborMineCount(Point{1, 1}))
	assert.Equal(t, 2, field.NeighborMineCount(Point{1, 0}))
	assert.Equal(t, 2, field.NeighborMineCount(Point{0, 1}))
	assert.Equal(t, 1, field.NeighborMineCount(Point{2, 2}))
	// Mines are counted around mines too
	assert.Equal(t, 0, field.NeighborMineCount(Point{0, 0}))
	assert.Equal(t, 0, field.NeighborMineCount(Point{1, 2}))
}

func TestMinefieldOpen(t *testing.T) {
	field, err := NewMinefield(Grid{Rows: 1, Columns: 3}, []Point{{0, 0}})
	require.NoError(t, err)

	assert.Equal(t, 1, field.open(Point{1, 0}))
	cell := field.Cell(Point{1, 0})
	assert.Equal(t, FieldSafe, cell.Kind())
	assert.Equal(t, 1, cell.Count())
	assert.False(t, cell.IsMine())

	field.explode(Point{0, 0})
	assert.Equal(t, FieldExploded, field.Cell(Point{0, 0}).Kind())
	assert.True(t, field.IsMine(Point{0, 0}))
}
