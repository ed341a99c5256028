package game

import (
	"time"
)

type GameConfig struct {
	Rows, Columns int
	NumMines      int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as hidden when loading the Snapshot
	LoadSnapshotFresh bool

	// Plays the game instead of the user, when set
	Director Director
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:              16,
		Columns:           30,
		NumMines:          99,
		Seed:              time.Now().UnixNano(),
		Snapshot:          nil,
		LoadSnapshotFresh: true,
		Director:          nil,
	}
}

// Validate reports whether a board can be generated from the config. Boards
// loaded from a snapshot carry their own dimensions.
func (config GameConfig) Validate() error {
	if config.Snapshot != nil {
		return nil
	}
	return checkDimensions(Grid{Rows: config.Rows, Columns: config.Columns}, config.NumMines)
}

// NewSession starts a game as described by the config, and hands it to the
// director if there is one.
func (config GameConfig) NewSession() (*Session, error) {
	var (
		session *Session
		err     error
	)

	if config.Snapshot == nil {
		session, err = NewSession(config.Rows, config.Columns, config.NumMines, WithSeed(config.Seed))
	} else {
		session, err = config.Snapshot.NewSession(config.LoadSnapshotFresh)
	}
	if err != nil {
		return nil, err
	}

	if config.Director != nil {
		config.Director.Init(session)
	}

	return session, nil
}
