package main

import (
	"fmt"
	"io"

	"igunfollow/pkg/analyzer"
	"igunfollow/pkg/config"
	"igunfollow/pkg/logger"
	"igunfollow/pkg/report"
	"igunfollow/pkg/ui"
	"igunfollow/pkg/ui/tui"
)

// analyzeParams holds what one analysis run needs from the command line
type analyzeParams struct {
	configPath string
	flags      map[string]interface{}
	quiet      bool
	stdout     io.Writer
	stderr     io.Writer
}

// runAnalyze is the testable body of the root command
func runAnalyze(p analyzeParams) error {
	cfg, err := config.Load(p.configPath, p.flags)
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Logging, p.stderr); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.WithField("version", version).Debug("igunfollow starting")

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	res, err := a.Run()
	if err != nil {
		return err
	}

	color := colorOutput(p.stdout, cfg.Report.ColorEnabled)
	if !p.quiet {
		opts := report.SummaryOptions{
			ShowList: cfg.Report.ShowList && !cfg.Report.Interactive,
			Color:    color,
		}
		if err := report.PrintSummary(p.stdout, res, opts); err != nil {
			return fmt.Errorf("failed to print summary: %w", err)
		}
	}

	printer := ui.NewPrinter(p.stdout, color)
	printer.SetQuiet(p.quiet)
	printer.Print(report.RenderSaved(printer.Theme(), cfg.Output.File))

	if cfg.Report.Interactive {
		return tui.Run(res, cfg.Output.File)
	}
	return nil
}
