package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/xtding233/embers-balance/internal/config"
	"github.com/xtding233/embers-balance/internal/report"
	"github.com/xtding233/embers-balance/internal/sim"
)

type options struct {
	configPath string
	reportPath string
	runs       int
	seed       uint64
	seedSet    bool
	workers    int
	workersSet bool
	watch      bool
	interval   time.Duration
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	paths := config.Paths{BaseDir: "."}
	var opts options

	fs := flag.NewFlagSet("balancesim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", paths.ConfigPath(), "simulation config (YAML or JSON); defaults apply when missing")
	fs.StringVar(&opts.reportPath, "report", paths.ReportPath(), "CSV report destination")
	fs.IntVar(&opts.runs, "runs", sim.FromConfig, "number of runs (-1 = runs from config)")
	fs.Uint64Var(&opts.seed, "seed", 0, "base RNG seed (default: config seed, else random)")
	fs.IntVar(&opts.workers, "workers", 0, "parallel workers (default: config workers, else serial)")
	fs.BoolVar(&opts.watch, "watch", false, "re-run whenever the config file changes")
	fs.DurationVar(&opts.interval, "watch-interval", time.Second, "config poll interval for -watch")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			opts.seedSet = true
		case "workers":
			opts.workersSet = true
		}
	})
	if opts.runs < sim.FromConfig {
		fmt.Fprintln(stderr, "error: -runs must be >= 0, or -1 to use the config")
		return 2
	}
	if opts.workers < 0 {
		fmt.Fprintln(stderr, "error: -workers must be >= 0")
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: true, Prefix: "balancesim"})
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger.SetLevel(level)

	loader := config.NewLoader(opts.configPath, logger)
	if !opts.watch {
		if err := execute(loader, opts, stdout, logger); err != nil {
			logger.Error("balance run failed", "err", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watch(ctx, loader, opts, stdout, logger); err != nil {
		logger.Error("watch failed", "err", err)
		return 1
	}
	return 0
}

// execute runs one batch and writes its report.
func execute(loader *config.Loader, opts options, stdout io.Writer, logger *log.Logger) error {
	settings, err := loader.Load()
	if err != nil {
		return err
	}
	if opts.seedSet {
		settings.Seed = &opts.seed
	}
	if opts.workersSet {
		settings.Workers = opts.workers
	}
	source := settings.Source
	if source == "" {
		source = "built-in defaults"
	}
	logger.Info("settings loaded", "source", source, "max_days", settings.Sim.MaxDays, "crops", len(settings.Sim.CropChoices))

	fmt.Fprintln(stdout, "Running balance simulations...")
	res := sim.RunBatch(settings.Sim, opts.runs, sim.BatchOptions{
		Seed:    settings.Seed,
		Workers: settings.Workers,
		Logger:  logger,
	})
	logger.Info("batch finished", "batch", res.ID, "seed", res.Seed, "runs", humanize.Comma(int64(res.Len())))

	fmt.Fprintln(stdout, "\nGenerating report...")
	size, werr := report.WriteCSV(opts.reportPath, res.Outcomes)
	if werr == nil {
		logger.Info("report written", "path", opts.reportPath, "size", humanize.Bytes(uint64(size)))
	}

	// The summary is printed even when the CSV could not be written.
	if summary, ok := report.Summarize(res.Outcomes); ok {
		warnings := settings.Thresholds.Check(summary)
		if err := report.PrintSummary(stdout, summary, warnings); err != nil {
			return errors.Join(werr, err)
		}
		for _, w := range warnings {
			logger.Warn("outlier", "kind", w.Kind, "value", w.Value, "threshold", w.Threshold)
		}
	}
	if werr != nil {
		return werr
	}

	fmt.Fprintln(stdout, "\nDone!")
	return nil
}

// watch runs once, then again after every config change until ctx ends.
// Failed runs are logged and do not stop the loop.
func watch(ctx context.Context, loader *config.Loader, opts options, stdout io.Writer, logger *log.Logger) error {
	if opts.interval <= 0 {
		return fmt.Errorf("-watch-interval must be > 0, got %s", opts.interval)
	}
	reload := make(chan struct{}, 1)
	w := config.NewFileWatcher([]string{loader.Path()}, opts.interval, func(p string) {
		logger.Info("config changed", "path", p)
		loader.Invalidate()
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	for {
		if err := execute(loader, opts, stdout, logger); err != nil {
			logger.Error("balance run failed", "err", err)
		}
		logger.Info("waiting for config changes", "path", loader.Path())
		select {
		case <-ctx.Done():
			return nil
		case <-reload:
		}
	}
}
