// geomerge is a terminal take on a geolocated collect-and-merge game:
// walk an endless tile grid, pick up tokens, and merge equal pairs until
// one of them reaches the victory value.
//
// Usage:
//
//	geomerge play             - Play a session in the local terminal
//	geomerge serve            - Start SSH server for remote play
//	geomerge scores           - Show the run history
//	geomerge probe            - Dump deterministic spawns around a point
//
// Global flags:
//
//	--config <path>  - Path to custom game config YAML
//	--db <path>      - Set database path (default: ~/.geomerge/runs.db)
//	--salt <value>   - World salt (same salt = same world)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSalt   uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geomerge",
	Short: "Geomerge - walk, collect, and merge tokens in your terminal",
	Long: `Geomerge drops you onto an endless geographic tile grid seeded with
tokens. Pick a token up, carry it to an equal one, and merge them into a
doubled token. Reach the victory value to win; the world is deterministic,
so everything you left behind is still there when you come back.

Available commands:
  play     - Play a session in the local terminal
  serve    - Start SSH server for remote play
  scores   - View the run history
  probe    - Inspect deterministic spawns around a point

Examples:
  geomerge play
  geomerge play --salt 42
  geomerge serve --ssh :2222
  geomerge scores --interactive
  geomerge probe --radius 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geomerge/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().Uint64Var(&flagSalt, "salt", 0, "World salt (same salt = same world)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(probeCmd)
}
