package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// options are the command-line parameters; flags that are set override the config file
type options struct {
	configPath string
	rows       int
	cols       int
	seed       int64
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "config.json", "path to the JSON configuration file")
	fs.IntVar(&o.rows, "rows", 0, "number of grid rows")
	fs.IntVar(&o.cols, "cols", 0, "number of grid columns")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 for a random start")
}

// apply copies every explicitly set flag onto the config
func (o *options) apply(fs *flag.FlagSet, config *utils.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			config.Rows = o.rows
		case "cols":
			config.Cols = o.cols
		case "seed":
			config.Seed = o.seed
		}
	})
}

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(opts *options, fs *flag.FlagSet, logger *slog.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("using default configuration", "missing", opts.configPath)
		config = utils.DefaultConfig()
	case err != nil:
		return config, err
	default:
		logger.Info("loaded configuration", "path", opts.configPath)
	}

	opts.apply(fs, &config)
	return config, config.Validate()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := runMain(logger); err != nil {
		logger.Error("game of life failed", "error", err)
		os.Exit(1)
	}
}

func runMain(logger *slog.Logger) error {
	var opts options
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts.bind(fs)
	_ = fs.Parse(os.Args[1:])

	config, err := loadConfig(&opts, fs, logger)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		if err = waitForStart(os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	grid, err := model.MakeGrid(config.Rows, config.Cols, utils.SourceForSeed(config.Seed))
	if err != nil {
		return err
	}

	var (
		renderer model.Renderer
		status   io.Writer = os.Stdout
	)
	switch config.Renderer {
	case utils.RendererScreen:
		screen, err := model.NewScreenRenderer()
		if err != nil {
			return err
		}
		defer screen.Close()

		go func() {
			select {
			case <-screen.Quit():
				stop()
			case <-ctx.Done():
			}
		}()
		renderer, status = screen, nil
	default:
		renderer = &model.TextRenderer{Out: os.Stdout}
	}

	g := newGame(config, renderer, status, logger)
	reason, err := g.run(ctx, grid)
	if err != nil {
		return err
	}
	g.logFinalStats(reason)
	return nil
}
