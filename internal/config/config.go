package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Dataset location and decoding
	DataPath           string `mapstructure:"data_path" yaml:"data_path"`
	Encoding           string `mapstructure:"encoding" yaml:"encoding"`
	Delimiter          string `mapstructure:"delimiter" yaml:"delimiter"`
	ThousandsSeparator string `mapstructure:"thousands_separator" yaml:"thousands_separator"`
	Sheet              string `mapstructure:"sheet" yaml:"sheet"`
	SheetIndex         int    `mapstructure:"sheet_index" yaml:"sheet_index"`

	// Column roles
	RegionColumn    string `mapstructure:"region_column" yaml:"region_column"`
	SubRegionColumn string `mapstructure:"subregion_column" yaml:"subregion_column"`
	YearColumn      string `mapstructure:"year_column" yaml:"year_column"`

	// Presentation
	FontPath      string  `mapstructure:"font_path" yaml:"font_path"`
	PreviewRows   int     `mapstructure:"preview_rows" yaml:"preview_rows"`
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`

	// HTTP dashboard
	ListenAddr     string   `mapstructure:"listen_addr" yaml:"listen_addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.petreg/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PETREG")
	v.AutomaticEnv()

	// Dataset defaults match the provincial open-data export.
	v.SetDefault("data_path", "반려동물등록현황.csv")
	v.SetDefault("encoding", "cp949")
	v.SetDefault("delimiter", "")
	v.SetDefault("thousands_separator", "")
	v.SetDefault("sheet", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("region_column", "시군명")
	v.SetDefault("subregion_column", "읍면동명")
	v.SetDefault("year_column", "기준년도")
	// Presentation defaults
	v.SetDefault("font_path", "malgun.ttf")
	v.SetDefault("preview_rows", 5)
	v.SetDefault("chart_width_in", 12.0)
	v.SetDefault("chart_height_in", 7.0)
	// HTTP defaults
	v.SetDefault("listen_addr", "127.0.0.1:8501")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.PreviewRows <= 0 {
		c.PreviewRows = 5
	}
	return &c, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".petreg"), nil
}
