package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sandfall/internal/app"
	"sandfall/internal/config"
	"sandfall/internal/core"
	_ "sandfall/internal/materials"
	"sandfall/internal/metrics"
	"sandfall/internal/tui"
)

var (
	configFile string
	width      int
	height     int
	scale      int
	tps        int
	seed       int64
	material   string
	brush      int
	fill       float64
	fillRows   int
	ticks      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandfall",
		Short: "falling sand automaton",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}

	defaults := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&width, "width", defaults.Width, "grid width in cells")
	pf.IntVar(&height, "height", defaults.Height, "grid height in cells")
	pf.IntVar(&scale, "scale", defaults.Scale, "pixels per cell")
	pf.IntVar(&tps, "tps", defaults.TPS, "simulation ticks per second")
	pf.Int64Var(&seed, "seed", defaults.Seed, "seed for the initial fill")
	pf.StringVar(&material, "material", defaults.Material, "starting material")
	pf.IntVar(&brush, "brush", defaults.Brush, "brush radius in cells")
	pf.Float64Var(&fill, "fill", 0, "initial fill density [0,1]")
	pf.IntVar(&fillRows, "fill-rows", 0, "rows to fill from the top (0 = all)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the terminal frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run headless ticks and chart the pile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBench(cfg)
		},
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 400, "maximum ticks to run")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list registered materials",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.Names() {
				id, m := core.ByName(name)
				c := m.Color()
				fmt.Printf("%-8s id=%d  #%02x%02x%02x\n", name, id, c.R, c.G, c.B)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, benchCmd, materialsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the sources: defaults, then the optional config file,
// then any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("material") {
		cfg.Material = material
	}
	if flags.Changed("brush") {
		cfg.Brush = brush
	}
	if flags.Changed("fill") {
		cfg.FillDensity = fill
	}
	if flags.Changed("fill-rows") {
		cfg.FillRows = fillRows
	}
	cfg.Normalize()

	if _, m := core.ByName(cfg.Material); m == nil {
		return nil, fmt.Errorf("unknown material %q (see `sandfall materials`)", cfg.Material)
	}
	return cfg, nil
}

// runBench scatters a seeded fill, steps until the world settles or the tick
// budget runs out, and charts the tallest pile per tick.
func runBench(cfg *config.Config) error {
	grid := core.NewGrid(cfg.Width, cfg.Height)
	id, _ := core.ByName(cfg.Material)

	density := cfg.FillDensity
	if density == 0 {
		density = 0.3
	}
	rows := cfg.FillRows
	if rows == 0 {
		rows = cfg.Height / 4
	}
	core.Scatter(core.NewRNG(cfg.Seed).Source(), grid, id, density, rows)

	particles := metrics.Occupied(grid)
	series := []float64{float64(metrics.MaxPileHeight(grid))}
	settledAt := -1

	for i := 1; i <= ticks; i++ {
		grid.Step()
		series = append(series, float64(metrics.MaxPileHeight(grid)))
		if metrics.Settled(grid) {
			settledAt = i
			break
		}
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Caption("max pile height per tick")))
	fmt.Printf("\nmaterial: %s  grid: %dx%d  seed: %d\n", cfg.Material, cfg.Width, cfg.Height, cfg.Seed)
	fmt.Printf("particles: %d (conserved: %v)\n", particles, metrics.Occupied(grid) == particles)
	if settledAt >= 0 {
		fmt.Printf("settled after %d ticks\n", settledAt)
	} else {
		fmt.Printf("not settled after %d ticks\n", ticks)
	}
	return nil
}
