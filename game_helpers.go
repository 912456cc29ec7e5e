package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	welcomeMessage = "Welcome Conway's Game of Life!"
	startPrompt    = "Press ENTER to start the simulation."

	stopInterrupted    = "interrupted"
	stopMaxGenerations = "maximum generations reached"
	stopStillLife      = "still life reached"
)

// game owns the driver state: the current generation and the collaborators that render and advance it
type game struct {
	config   utils.Config
	renderer model.Renderer
	stepper  *model.Stepper
	pool     *model.GridPool
	stats    *utils.Stats
	status   io.Writer // nil disables the status lines
	logger   *slog.Logger
}

// newGame sets up the driver for the given renderer
func newGame(config utils.Config, renderer model.Renderer, status io.Writer, logger *slog.Logger) *game {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		config:   config,
		renderer: renderer,
		stepper:  model.NewStepper(config, pool),
		pool:     pool,
		stats:    utils.NewStats(),
		status:   status,
		logger:   logger,
	}
}

// waitForStart prints the welcome message and blocks until a line is read
func waitForStart(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, welcomeMessage)
	fmt.Fprint(out, startPrompt)

	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && err != io.EOF {
		return errors.Wrap(err, "[waitForStart] failed to read from input")
	}
	return nil
}

// run renders and steps generations until ctx is done or a stop condition is met
func (g *game) run(ctx context.Context, grid *model.Grid) (string, error) {
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return stopInterrupted, nil
		default:
		}

		frameStart := time.Now()
		if err := g.renderer.Clear(); err != nil {
			return "", err
		}
		if err := g.renderer.Display(grid); err != nil {
			return "", err
		}

		g.stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = frameStart
		g.displayGameStatus(generation, grid)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			return stopMaxGenerations, nil
		}

		next, err := g.stepper.Next(grid)
		if err != nil {
			return "", err
		}

		if g.config.StopOnStillLife && next.Equal(grid) {
			model.Release(next, g.pool)
			return stopStillLife, nil
		}

		// nothing else holds the previous generation once it has been displayed
		model.Release(grid, g.pool)
		grid = next
		generation++

		select {
		case <-ctx.Done():
			return stopInterrupted, nil
		case <-time.After(g.config.FrameRate):
		}
	}
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(generation int, grid *model.Grid) {
	if g.status == nil {
		return
	}

	fmt.Fprintf(g.status, "Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, grid.CountLivingCells(), grid.Density()*100)
	fmt.Fprintf(g.status, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
}

// logFinalStats reports how the run ended
func (g *game) logFinalStats(reason string) {
	g.logger.Info("simulation stopped",
		"reason", reason,
		"generations", g.stats.TotalGenerations,
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", g.stats.AveragePopulation),
	)
}
