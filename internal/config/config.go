package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/moneydash/internal/chart"
	"github.com/jask/moneydash/internal/projection"
)

// Config holds application configuration.
type Config struct {
	UI         UIConfig
	Chart      ChartConfig
	Projection ProjectionConfig
	Log        LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency   string
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

// ChartConfig sizes the projection chart in terminal cells.
type ChartConfig struct {
	Width   int
	Height  int
	Padding int
}

// ScenarioConfig is one projection rate assumption.
type ScenarioConfig struct {
	Name  string
	Rate  float64
	Color string
}

// ProjectionConfig holds the growth projection inputs that do not come from
// the ledger.
type ProjectionConfig struct {
	HorizonYears         int              `mapstructure:"horizon_years"`
	AnnualContribution   float64          `mapstructure:"annual_contribution"`
	Scenarios            []ScenarioConfig `mapstructure:"scenarios"`
	InvestedAccountTypes []string         `mapstructure:"invested_account_types"`
}

// LogConfig holds logger settings. Path "stderr" logs to stderr.
type LogConfig struct {
	Level  string
	Format string
	Path   string
}

// Surface converts the chart settings.
func (c ChartConfig) Surface() chart.Surface {
	return chart.Surface{Width: c.Width, Height: c.Height, Padding: c.Padding}
}

// ProjectionScenarios converts the configured scenarios.
func (c ProjectionConfig) ProjectionScenarios() []projection.Scenario {
	out := make([]projection.Scenario, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		out = append(out, projection.Scenario{Name: s.Name, Rate: s.Rate, Color: s.Color})
	}
	return out
}

func defaultScenarios() []map[string]any {
	return []map[string]any{
		{"name": "Conservative", "rate": 0.04, "color": "#89b4fa"},
		{"name": "Moderate", "rate": 0.06, "color": "#a6e3a1"},
		{"name": "Aggressive", "rate": 0.08, "color": "#fab387"},
	}
}

// Path returns the config file location: $MONEYDASH_CONFIG or
// ~/.config/moneydash/config.toml.
func Path() string {
	if p := os.Getenv("MONEYDASH_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "moneydash", "config.toml")
}

// DefaultLogPath is ~/.local/state/moneydash/moneydash.log.
func DefaultLogPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "moneydash", "moneydash.log")
}

// Load reads .env, the config file and the environment. Env var overrides
// use prefix MONEYDASH_. A missing config file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("ui.currency", "USD")
	v.SetDefault("ui.date_format", "Monday, January 2, 2006")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("chart.width", 72)
	v.SetDefault("chart.height", 16)
	v.SetDefault("chart.padding", 2)
	v.SetDefault("projection.horizon_years", 30)
	v.SetDefault("projection.annual_contribution", 6000.0)
	v.SetDefault("projection.scenarios", defaultScenarios())
	v.SetDefault("projection.invested_account_types", []string{"investment"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", DefaultLogPath())

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("MONEYDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Projection limits enforced by Validate.
const (
	MaxHorizonYears = 100
	MinRate         = -1.0
	MaxRate         = 1.0
)

// Validate rejects settings the dashboard cannot draw with.
func (c Config) Validate() error {
	if err := c.Projection.Validate(); err != nil {
		return err
	}
	if c.Chart.Padding < 0 || c.Chart.Width <= 2*c.Chart.Padding || c.Chart.Height <= 2*c.Chart.Padding {
		return fmt.Errorf("config: chart %dx%d too small for padding %d", c.Chart.Width, c.Chart.Height, c.Chart.Padding)
	}
	return nil
}

// Validate checks the horizon, the contribution and every scenario rate.
func (c ProjectionConfig) Validate() error {
	if c.HorizonYears < 0 || c.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("config: projection.horizon_years must be within 0..%d, got %d", MaxHorizonYears, c.HorizonYears)
	}
	if math.IsNaN(c.AnnualContribution) || math.IsInf(c.AnnualContribution, 0) {
		return fmt.Errorf("config: projection.annual_contribution must be finite")
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("config: at least one projection scenario is required")
	}
	for _, s := range c.Scenarios {
		if math.IsNaN(s.Rate) || s.Rate < MinRate || s.Rate > MaxRate {
			return fmt.Errorf("config: scenario %q rate %v outside %v..%v", s.Name, s.Rate, MinRate, MaxRate)
		}
	}
	return nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	scenarios := make([]map[string]any, 0, len(cfg.Projection.Scenarios))
	for _, s := range cfg.Projection.Scenarios {
		scenarios = append(scenarios, map[string]any{"name": s.Name, "rate": s.Rate, "color": s.Color})
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("chart.width", cfg.Chart.Width)
	v.Set("chart.height", cfg.Chart.Height)
	v.Set("chart.padding", cfg.Chart.Padding)
	v.Set("projection.horizon_years", cfg.Projection.HorizonYears)
	v.Set("projection.annual_contribution", cfg.Projection.AnnualContribution)
	v.Set("projection.scenarios", scenarios)
	v.Set("projection.invested_account_types", cfg.Projection.InvestedAccountTypes)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
