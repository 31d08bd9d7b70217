package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/luck"
	"github.com/vovakirdan/geomerge/internal/platform/tui"
	"github.com/vovakirdan/geomerge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session in the local terminal",
	Long: `Start a play session in the local terminal.

Controls:
  WASD/Arrows  - Walk (one cell per step)
  hjkl         - Move the target cursor
  Enter/Space  - Pick up / drop / merge on the cursor cell
  Mouse click  - Interact with any visible cell
  C            - Snap cursor back to the player
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  geomerge play
  geomerge play --salt 42
  geomerge play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	runErr := tui.Run(cfg, store, luck.New(flagSalt), width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
