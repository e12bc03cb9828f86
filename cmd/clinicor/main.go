// cmd/clinicor/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"clinicor/internal/adapters/input"
	"clinicor/internal/adapters/knowledge"
	"clinicor/internal/core/domain"
	"clinicor/internal/core/ports"
	"clinicor/internal/core/usecases"
	"clinicor/internal/platform/config"
	"clinicor/internal/platform/logx"
	"clinicor/internal/platform/registry"
	"clinicor/internal/platform/ui"
	"clinicor/internal/platform/workerpool"

	// Import exporters for auto-registration via init()
	_ "clinicor/internal/adapters/output"
)

var (
	// Filled with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (ENV then flags, flags win)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("clinicor %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if len(cfg.Inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one classifier output file is required")
		fmt.Fprintln(os.Stderr, "Usage: clinicor [flags] <findings.json> [more.json ...]")
		fmt.Fprintln(os.Stderr, "Try: clinicor -h for help")
		os.Exit(2)
	}

	// 2. Shared logger
	logger := logx.New()
	switch {
	case cfg.LogLevel != "":
		logger.SetLevel(logx.ParseLevel(cfg.LogLevel))
	case cfg.UIMode != "quiet":
		// The presenter owns the terminal; keep the logger to errors only.
		logger.SetLevel(logx.LevelError)
	}

	logger.Info("clinicor starting",
		"version", version,
		"inputs", len(cfg.Inputs),
		"workers", cfg.Workers,
		"top_n", cfg.TopN,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 4. Load the knowledge base
	kb, err := loadKnowledge(cfg)
	if err != nil {
		logger.Err(err, "phase", "knowledge-load")
		fmt.Fprintf(os.Stderr, "Error: knowledge base: %v\n", err)
		os.Exit(2)
	}

	// 5. Build exporters from the registry
	exporters, err := registry.Global().Build(cfg.Formats)
	if err != nil {
		logger.Err(err, "phase", "exporter-build")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// 6. Ranking pipeline shared by every input
	service := usecases.NewRankingService(kb, usecases.RankingOptions{
		Thresholds: cfg.Thresholds(),
		TopN:       cfg.TopN,
		Version:    version,
		Logger:     logger,
	})

	// 7. Presenter
	presenter := ui.ForMode(ui.UIMode(cfg.UIMode))
	defer presenter.Close()

	presenter.Start(ui.RunInfo{
		Inputs:        cfg.Inputs,
		KnowledgeBase: kb.Name,
		TopN:          cfg.TopN,
		Workers:       cfg.Workers,
		Formats:       cfg.Formats,
	})

	// 8. Run the batch
	start := time.Now()
	stats, failed := runBatch(ctx, cfg, service, exporters, presenter, logger)
	stats.TotalDuration = time.Since(start)

	presenter.Finish(stats)

	logger.Info("clinicor finished",
		"elapsed_ms", stats.TotalDuration.Milliseconds(),
		"analyzed", stats.FilesAnalyzed,
		"failed", stats.FilesFailed,
		"groups", stats.TotalGroups,
	)

	if failed {
		os.Exit(1)
	}
}

// loadKnowledge selects the YAML source when a path is configured and
// the builtin chest X-ray tables otherwise.
func loadKnowledge(cfg config.Config) (*domain.KnowledgeBase, error) {
	var src ports.KnowledgeSource = knowledge.NewBuiltinSource()
	if cfg.KnowledgePath != "" {
		src = knowledge.NewYAMLSource(cfg.KnowledgePath)
	}
	return src.Load()
}

// runBatch analyzes every input. A single file runs inline; several
// files go through the worker pool.
func runBatch(
	ctx context.Context,
	cfg config.Config,
	service *usecases.RankingService,
	exporters []ports.Exporter,
	presenter ui.Presenter,
	logger logx.Logger,
) (ui.RunStats, bool) {
	opts := ports.DefaultExportOptions()
	opts.OutputDir = cfg.OutputDir

	var stats ui.RunStats
	failed := false

	// Tasks run on pool goroutines; guard the shared counters.
	var mu sync.Mutex
	groupsByLoc := make(map[string]int, len(cfg.Inputs))

	tasks := make([]workerpool.Task, 0, len(cfg.Inputs))
	for _, location := range cfg.Inputs {
		loc := location
		tasks = append(tasks, &usecases.AnalysisTask{
			Location:  loc,
			Reader:    input.NewJSONReader(),
			Service:   service,
			Exporters: exporters,
			Options:   opts,
			Logger:    logger,
			OnReport: func(report *domain.AnalysisReport) {
				mu.Lock()
				stats.TotalFindings += len(report.Findings)
				stats.TotalGroups += len(report.Groups)
				stats.TotalWarnings += len(report.Warnings)
				groupsByLoc[loc] = len(report.Groups)
				mu.Unlock()
				presenter.ShowReport(report)
			},
		})
		presenter.StartFile(loc)
	}

	if len(tasks) == 1 {
		taskStart := time.Now()
		err := tasks[0].Execute(ctx)
		finishTask(presenter, tasks[0].Name(), err, time.Since(taskStart), &stats, groupsByLoc)
		return stats, err != nil
	}

	pool := workerpool.New(workerpool.Config{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	pool.Start()
	results := pool.Submit(tasks)
	pool.Stop()

	for _, res := range results {
		finishTask(presenter, res.Task.Name(), res.Error, res.Duration, &stats, groupsByLoc)
		if res.Error != nil {
			failed = true
		}
	}

	return stats, failed
}

// finishTask reports one task outcome to the presenter and the stats.
func finishTask(presenter ui.Presenter, location string, err error, duration time.Duration, stats *ui.RunStats, groupsByLoc map[string]int) {
	if err != nil {
		stats.FilesFailed++
		presenter.FinishFile(location, ui.StatusError, duration, 0)
		presenter.Error(fmt.Sprintf("%s: %v", location, err))
		return
	}
	stats.FilesAnalyzed++
	presenter.FinishFile(location, ui.StatusSuccess, duration, groupsByLoc[location])
}

// rootContextWithSignals creates a root context cancelled on SIGINT or
// SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanup
}
