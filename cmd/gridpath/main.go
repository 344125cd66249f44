// Command gridpath runs one A* search on a wall grid and prints the route.
//
// The scenario comes from config.Load: a .env file in the working directory,
// then GRIDPATH_* environment variables, then the built-in 7×7 board:
//
//	-  -  -  -  -  █  G
//	-  -  -  █  -  █  -
//	-  -  -  █  -  █  -
//	-  -  -  -  -  █  -
//	-  -  -  █  -  -  -
//	-  -  -  █  -  █  -
//	S  -  -  █  -  █  -
//
// Usage:
//
//	GRIDPATH_MODE=diagonal gridpath
//	GRIDPATH_MODE=diagonal GRIDPATH_HEURISTIC=chebyshev gridpath
//
// When the goal is unreachable the command reports how many walls the
// cheapest breach would have to remove.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

const searchTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] Loading configuration: %v", err)
	}

	g, err := cfg.Grid()
	if err != nil {
		log.Fatalf("[APP] [FATAL] Building grid: %v", err)
	}
	log.Printf("[APP] [INFO] Grid %dx%d with %d walls, %s movement, %s heuristic",
		g.Width, g.Height, len(g.Blocked()), cfg.Mode, cfg.Heuristic)

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	res, err := astar.FindPath(g, cfg.Start, cfg.Goal, cfg.Mode, searchOptions(ctx, cfg)...)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Searching %d -> %d: %v", cfg.Start, cfg.Goal, err)
	}
	log.Printf("[APP] [INFO] Search closed %d cells", res.Expanded)

	if err := render.Summary(os.Stdout, res); err != nil {
		log.Fatalf("[APP] [FATAL] Writing summary: %v", err)
	}
	if err := render.Grid(os.Stdout, g, res.Indices(), render.WithEndpoints('S', 'G')); err != nil {
		log.Fatalf("[APP] [FATAL] Rendering grid: %v", err)
	}

	if !res.Found {
		reportBreach(g, cfg)
	}
}

func searchOptions(ctx context.Context, cfg config.Config) []astar.Option {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithHeuristic(cfg.Heuristic),
		astar.WithMaxExpansions(cfg.MaxExpansions),
	}
	if cfg.LegacyOpenSet {
		log.Printf("[APP] [WARN] Legacy open set: open cells keep their first cost")
		opts = append(opts, astar.WithoutDecreaseKey())
	}
	return opts
}

// reportBreach logs the fewest walls separating start from goal.
func reportBreach(g *grid.Grid, cfg config.Config) {
	route, walls, err := g.MinBreach(cfg.Start, cfg.Goal, cfg.Mode)
	if err != nil {
		log.Printf("[APP] [ERROR] Computing breach: %v", err)
		return
	}
	log.Printf("[APP] [INFO] No path: removing %d wall(s) along a %d-cell route would connect %d and %d",
		walls, len(route), cfg.Start, cfg.Goal)
}
