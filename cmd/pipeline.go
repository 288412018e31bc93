package cmd

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/petreg/internal/analysis"
	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/KaramelBytes/petreg/internal/render"
)

// loadTable reads the configured dataset.
func loadTable() (*dataset.Table, error) {
	if err := ensureConfig(); err != nil {
		return nil, err
	}
	opt, err := datasetOptions(cfg)
	if err != nil {
		return nil, err
	}
	return dataset.Load(cfg.DataPath, opt)
}

// runPipeline performs one full rerun for the given selection. Failures come
// back as the user-facing banner text.
func runPipeline(sel analysis.Selection) (*analysis.View, error) {
	start := time.Now()
	tbl, err := loadTable()
	if err != nil {
		return nil, bannerError(err)
	}
	v, err := analysis.BuildView(tbl, columnsFrom(cfg), sel, cfg.PreviewRows, render.FormatTotal)
	if err != nil {
		return nil, bannerError(err)
	}
	v.RunID = uuid.NewString()
	logger.Debug("Pipeline rerun",
		"run_id", v.RunID,
		"region", v.Selection.Region,
		"metric", v.Selection.Metric,
		"rows", len(v.Result.Rows),
		"total", v.Result.Total,
		"elapsed", time.Since(start),
	)
	return v, nil
}

func bannerError(err error) error {
	logger.Debug("Pipeline failed", "error", err)
	return errors.New(analysis.Describe(err).Message)
}

// setupFonts registers the configured font and prints the warning, if any.
func setupFonts() {
	if cfg == nil || cfg.FontPath == "" {
		return
	}
	warn, err := render.SetupFonts(cfg.FontPath)
	if err != nil {
		logger.Warn("Font setup failed, using built-in font", "path", cfg.FontPath, "error", err)
		return
	}
	if warn != "" {
		logger.Warn(warn)
	}
}
