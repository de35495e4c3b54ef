package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/leave-planner/internal/planner"
)

// EnvPrefix is the prefix of environment variables overriding config keys
const EnvPrefix = "LEAVE_PLANNER"

// Config represents application configuration
type Config struct {
	Planner  PlannerConfig  `mapstructure:"planner"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

// PlannerConfig represents the default planning request and heuristic constants
type PlannerConfig struct {
	MaxLeaves    int          `mapstructure:"max_leaves"`
	FridayDouble bool         `mapstructure:"friday_double"`
	Policy       PolicyConfig `mapstructure:"policy"`
}

// PolicyConfig mirrors planner.Policy
type PolicyConfig struct {
	ScanPaddingDays        int      `mapstructure:"scan_padding_days"`
	MaxBridgeWorkdays      int      `mapstructure:"max_bridge_workdays"`
	BaseScore              int      `mapstructure:"base_score"`
	BonusWindowDays        int      `mapstructure:"bonus_window_days"`
	WeekBonusThreshold     int      `mapstructure:"week_bonus_threshold"`
	WeekBonus              int      `mapstructure:"week_bonus"`
	ExtendedBonusThreshold int      `mapstructure:"extended_bonus_threshold"`
	ExtendedBonus          int      `mapstructure:"extended_bonus"`
	PeriodPaddingDays      int      `mapstructure:"period_padding_days"`
	MinPeriodDays          int      `mapstructure:"min_period_days"`
	Weekend                []string `mapstructure:"weekend"`
}

// CalendarConfig represents holiday source configuration
type CalendarConfig struct {
	Type string `mapstructure:"type"` // "computed", "nager" or "file"

	// computed type, also the nager fallback
	HijriCalendar string `mapstructure:"hijri_calendar"` // "umm_al_qura" or "tabular"
	HijriOffset   int    `mapstructure:"hijri_offset"`

	// nager type
	APIURL   string `mapstructure:"api_url"`
	Country  string `mapstructure:"country"`
	CacheTTL string `mapstructure:"cache_ttl"`

	// File is the holiday list for the file type
	File string `mapstructure:"file"`
	// OverlayFile corrects the computed or fetched holidays
	OverlayFile string `mapstructure:"overlay_file"`
}

// OutputConfig represents report rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text", "json" or "csv"
	Locale string `mapstructure:"locale"` // "tr" or "en"
	Color  string `mapstructure:"color"`  // "auto", "always" or "never"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr            string   `mapstructure:"addr"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	p := planner.DefaultPolicy()

	v.SetDefault("planner.max_leaves", 14)
	v.SetDefault("planner.friday_double", false)
	v.SetDefault("planner.policy.scan_padding_days", p.ScanPaddingDays)
	v.SetDefault("planner.policy.max_bridge_workdays", p.MaxBridgeWorkdays)
	v.SetDefault("planner.policy.base_score", p.BaseScore)
	v.SetDefault("planner.policy.bonus_window_days", p.BonusWindowDays)
	v.SetDefault("planner.policy.week_bonus_threshold", p.WeekBonusThreshold)
	v.SetDefault("planner.policy.week_bonus", p.WeekBonus)
	v.SetDefault("planner.policy.extended_bonus_threshold", p.ExtendedBonusThreshold)
	v.SetDefault("planner.policy.extended_bonus", p.ExtendedBonus)
	v.SetDefault("planner.policy.period_padding_days", p.PeriodPaddingDays)
	v.SetDefault("planner.policy.min_period_days", p.MinPeriodDays)
	v.SetDefault("planner.policy.weekend", []string{"saturday", "sunday"})

	v.SetDefault("calendar.type", "computed")
	v.SetDefault("calendar.hijri_calendar", "umm_al_qura")
	v.SetDefault("calendar.hijri_offset", 0)
	v.SetDefault("calendar.api_url", "https://date.nager.at")
	v.SetDefault("calendar.country", "TR")
	v.SetDefault("calendar.cache_ttl", "24h")
	v.SetDefault("calendar.file", "")
	v.SetDefault("calendar.overlay_file", "")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.locale", "tr")
	v.SetDefault("output.color", "auto")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", "10s")
}

// Load loads configuration from file, .env and the environment.
// A missing config file is fine unless configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.leave-planner")
		v.AddConfigPath("/etc/leave-planner")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planner.MaxLeaves < 0 {
		return fmt.Errorf("planner.max_leaves must not be negative")
	}
	if _, err := c.Planner.Policy.ToPolicy(); err != nil {
		return fmt.Errorf("planner.policy: %w", err)
	}

	switch c.Calendar.Type {
	case "computed":
	case "nager":
		if c.Calendar.APIURL == "" {
			return fmt.Errorf("calendar.api_url is required for nager type")
		}
		if c.Calendar.Country == "" {
			return fmt.Errorf("calendar.country is required for nager type")
		}
	case "file":
		if c.Calendar.File == "" {
			return fmt.Errorf("calendar.file is required for file type")
		}
	default:
		return fmt.Errorf("calendar.type must be 'computed', 'nager' or 'file', got '%s'", c.Calendar.Type)
	}

	switch c.Calendar.HijriCalendar {
	case "umm_al_qura", "tabular":
	default:
		return fmt.Errorf("calendar.hijri_calendar must be 'umm_al_qura' or 'tabular', got '%s'", c.Calendar.HijriCalendar)
	}

	switch c.Output.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("output.format must be 'text', 'json' or 'csv', got '%s'", c.Output.Format)
	}

	switch c.Output.Locale {
	case "tr", "en":
	default:
		return fmt.Errorf("output.locale must be 'tr' or 'en', got '%s'", c.Output.Locale)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be 'auto', 'always' or 'never', got '%s'", c.Output.Color)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}

// ToPolicy converts the configured constants into a validated planner.Policy
func (p PolicyConfig) ToPolicy() (planner.Policy, error) {
	weekend := make([]time.Weekday, 0, len(p.Weekend))
	for _, name := range p.Weekend {
		day, err := parseWeekday(name)
		if err != nil {
			return planner.Policy{}, err
		}
		weekend = append(weekend, day)
	}

	policy := planner.Policy{
		ScanPaddingDays:        p.ScanPaddingDays,
		MaxBridgeWorkdays:      p.MaxBridgeWorkdays,
		BaseScore:              p.BaseScore,
		BonusWindowDays:        p.BonusWindowDays,
		WeekBonusThreshold:     p.WeekBonusThreshold,
		WeekBonus:              p.WeekBonus,
		ExtendedBonusThreshold: p.ExtendedBonusThreshold,
		ExtendedBonus:          p.ExtendedBonus,
		PeriodPaddingDays:      p.PeriodPaddingDays,
		MinPeriodDays:          p.MinPeriodDays,
		Weekend:                weekend,
	}

	if err := policy.Validate(); err != nil {
		return planner.Policy{}, err
	}
	return policy, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// GetCacheTTL returns cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetShutdownTimeout returns how long the server waits for in-flight requests
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.File = os.ExpandEnv(c.Calendar.File)
	c.Calendar.OverlayFile = os.ExpandEnv(c.Calendar.OverlayFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
