package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/petreg/internal/analysis"
	cfgpkg "github.com/KaramelBytes/petreg/internal/config"
	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/KaramelBytes/petreg/internal/render"
)

var (
	// Global flags
	cfgFile  string
	debug    bool
	flagData string
	flagEnc  string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
)

var rootCmd = &cobra.Command{
	Use:   "petreg",
	Short: "petreg: regional pet-registration dashboard",
	Long:  `petreg loads a regional pet-registration CSV, aggregates a chosen metric by region or sub-region, and renders a sorted bar chart with the total.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.petreg/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "dataset path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagEnc, "encoding", "", "dataset text encoding, e.g. cp949 or utf-8 (overrides config)")
}

func loadConfig() {
	// .env is optional
	_ = godotenv.Load()

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "error", err)
		c = &cfgpkg.Global{}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagData != "" {
		cfg.DataPath = flagData
	}
	if f.Changed("encoding") && flagEnc != "" {
		cfg.Encoding = flagEnc
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
}

// datasetOptions maps config onto loader options.
func datasetOptions(c *cfgpkg.Global) (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	if c.Encoding != "" {
		opt.Encoding = c.Encoding
	}
	d, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	switch c.ThousandsSeparator {
	case "":
	case ",":
		opt.Number.ThousandsSeparator = ','
	case ".":
		opt.Number.ThousandsSeparator = '.'
		opt.Number.DecimalSeparator = ','
	case "space", " ":
		opt.Number.ThousandsSeparator = ' '
	default:
		return opt, fmt.Errorf("unsupported thousands_separator: %s (use ','|'.'|'space')", c.ThousandsSeparator)
	}
	opt.Sheet = c.Sheet
	if c.SheetIndex > 0 {
		opt.SheetIndex = c.SheetIndex
	}
	return opt, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s", s)
	}
}

func columnsFrom(c *cfgpkg.Global) analysis.Columns {
	cols := analysis.DefaultColumns()
	if c.RegionColumn != "" {
		cols.Region = c.RegionColumn
	}
	if c.SubRegionColumn != "" {
		cols.SubRegion = c.SubRegionColumn
	}
	if c.YearColumn != "" {
		cols.Year = c.YearColumn
	}
	return cols
}

func chartOptions(c *cfgpkg.Global) render.ChartOptions {
	opt := render.DefaultChartOptions()
	if c.ChartWidthIn > 0 {
		opt.WidthIn = c.ChartWidthIn
	}
	if c.ChartHeightIn > 0 {
		opt.HeightIn = c.ChartHeightIn
	}
	return opt
}

func ensureConfig() error {
	if cfg != nil {
		return nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}
