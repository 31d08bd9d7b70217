package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/game"
	"github.com/vovakirdan/geomerge/internal/luck"
)

var (
	flagProbeLat    float64
	flagProbeLng    float64
	flagProbeRadius int
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Dump deterministic spawns around a point",
	Long: `Print the token layout the spawner produces around a world point,
without starting a session. Useful for checking what a config and salt
generate: running the same probe twice always prints the same layout.

The player is assumed to stand on the probed point, so the spawn radius
is measured from there.

Examples:
  geomerge probe
  geomerge probe --radius 5
  geomerge probe --lat 36.99 --lng -122.06 --salt 42`,
	Args: cobra.NoArgs,
	Run:  runProbe,
}

func init() {
	probeCmd.Flags().Float64Var(&flagProbeLat, "lat", 0, "Probe latitude (default: config home)")
	probeCmd.Flags().Float64Var(&flagProbeLng, "lng", 0, "Probe longitude (default: config home)")
	probeCmd.Flags().IntVar(&flagProbeRadius, "radius", 0, "Cells to dump in every direction (default: spawn radius)")
}

func runProbe(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lat, lng := cfg.Board.HomeLat, cfg.Board.HomeLng
	if cmd.Flags().Changed("lat") {
		lat = flagProbeLat
	}
	if cmd.Flags().Changed("lng") {
		lng = flagProbeLng
	}

	radius := cfg.Spawn.Radius
	if flagProbeRadius > 0 {
		radius = flagProbeRadius
	}

	spawner := game.NewSpawner(cfg.Spawn, luck.New(flagSalt))
	center := core.WorldToCell(core.WorldPoint{Lat: lat, Lng: lng}, cfg.Board.TileSize)

	fmt.Printf("Probing %d cells around %s (lat %.6f, lng %.6f, salt %d)\n",
		(2*radius+1)*(2*radius+1), center.Key(), lat, lng, flagSalt)
	fmt.Println()

	// Map view, north at the top
	tokens := 0
	for i := center.I + radius; i >= center.I-radius; i-- {
		for j := center.J - radius; j <= center.J+radius; j++ {
			tok := spawner.Token(core.Cell(i, j), center)
			switch {
			case tok != nil:
				fmt.Printf("%3d ", tok.Value)
				tokens++
			default:
				fmt.Printf("  . ")
			}
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("%d tokens in view\n", tokens)
}
