package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/they4kman/textsweep/director/constraint"
	"github.com/they4kman/textsweep/game"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "textsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `textsweep is a text Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually. Enter a column and a row to open a
cell, add "!" to flag it or "?" to mark it as a possible mine:
	textsweep
	> 3 4
	> 5 2 !

Use the director flag to make the computer play for you
	textsweep --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			game.Log.SetLevel(logrus.DebugLevel)
		}

		gameConfig, err := loadGameConfig()
		if err != nil {
			return err
		}

		session, err := gameConfig.NewSession()
		if err != nil {
			return err
		}

		if gameConfig.Director != nil {
			return direct(session, gameConfig.Director, cmd.OutOrStdout())
		}
		return play(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadGameConfig resolves the game settings from flags, environment and the
// config file. Explicit dimensions take precedence over the level preset.
func loadGameConfig() (game.GameConfig, error) {
	gameConfig := game.NewGameConfig()

	if name := viper.GetString("level"); name != "" {
		level, isValid := levels[name]
		if !isValid {
			return gameConfig, fmt.Errorf("invalid level %q", name)
		}
		gameConfig.Rows, gameConfig.Columns, gameConfig.NumMines = level.Rows, level.Columns, level.NumMines
	}
	if viper.IsSet("rows") {
		gameConfig.Rows = viper.GetInt("rows")
	}
	if viper.IsSet("columns") {
		gameConfig.Columns = viper.GetInt("columns")
	}
	if viper.IsSet("mines") {
		gameConfig.NumMines = viper.GetInt("mines")
	}
	if viper.IsSet("seed") {
		gameConfig.Seed = viper.GetInt64("seed")
	}

	if path := viper.GetString("board"); path != "" {
		in, err := os.ReadFile(path)
		if err != nil {
			return gameConfig, err
		}
		if gameConfig.Snapshot, err = game.LoadSnapshot(string(in)); err != nil {
			return gameConfig, err
		}
		gameConfig.LoadSnapshotFresh = viper.GetBool("fresh")
	}

	if viper.GetBool("director") {
		gameConfig.Director = &constraint.Director{}
	}

	return gameConfig, gameConfig.Validate()
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			game.Log.WithError(err).Warn("could not read config file")
		}
	}

	viper.SetEnvPrefix("textsweep")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func init() {
	cobra.OnInitialize(initConfig)

	game.Log.SetOutput(os.Stderr)
	game.Log.SetLevel(logrus.WarnLevel)
	game.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	defaults := game.NewGameConfig()
	flags := rootCmd.Flags()
	flags.IntP("rows", "r", defaults.Rows, "Height of game board, in cells")
	flags.IntP("columns", "c", defaults.Columns, "Width of game board, in cells")
	flags.IntP("mines", "m", defaults.NumMines, "Number of mines to place in the game board")
	flags.Int64("seed", 0, "Seed for mine placement (random when unset)")
	flags.Var(new(levelValue), "level", `Board preset, overridden by --rows, --columns and --mines:
easy: 10x10 with 15 mines
medium: 15x15 with 45 mines
hard: 20x20 with 100 mines`)
	flags.String("board", "", "Path to a YAML board snapshot to play on")
	flags.Bool("fresh", true, "Hide every cell of the --board snapshot before playing")
	flags.BoolP("director", "d", false, "Make the computer play")
	flags.BoolP("verbose", "v", false, "Log every move")
	flags.StringVar(&configFile, "config", "", "Config file with default flag values")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}
