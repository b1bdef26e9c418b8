package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Shop   ShopConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD" default:""`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	CatalogTTL time.Duration `envconfig:"REDIS_CATALOG_TTL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"WIB"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ShopConfig carries business configuration: the shop timezone and the
// per-barber opening windows. Hours format: "Name=HH:MM-HH:MM;Name=...".
type ShopConfig struct {
	TimeZoneName     string `envconfig:"SHOP_TIMEZONE" default:"WIB"`
	TimeZoneOffset   int    `envconfig:"SHOP_TIMEZONE_OFFSET" default:"25200"`
	Hours            string `envconfig:"SHOP_HOURS" default:"Arka=10:00-24:00;Kenzo=11:00-24:00"`
	SlotStepMinutes  int    `envconfig:"SHOP_SLOT_STEP_MINUTES" default:"15"`
	DefaultDuration  int    `envconfig:"SHOP_DEFAULT_DURATION_MINUTES" default:"45"`
	ProfitShareOwner int    `envconfig:"SHOP_PROFIT_SHARE_OWNER_PCT" default:"53"`
	ProfitShareStaff int    `envconfig:"SHOP_PROFIT_SHARE_STAFF_PCT" default:"42"`
	ProfitShareFund  int    `envconfig:"SHOP_PROFIT_SHARE_FUND_PCT" default:"5"`
}

type BarberWindow struct {
	OpenMinute  int
	CloseMinute int
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ShopConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZoneName, c.TimeZoneOffset)
}

// Windows parses the SHOP_HOURS string into per-barber opening windows.
func (c *ShopConfig) Windows() (map[string]BarberWindow, error) {
	windows := make(map[string]BarberWindow)
	for _, entry := range strings.Split(c.Hours, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, hours, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid shop hours entry: %q", entry)
		}
		openRaw, closeRaw, ok := strings.Cut(hours, "-")
		if !ok {
			return nil, fmt.Errorf("invalid shop hours range: %q", hours)
		}
		open, err := parseMinuteOfDay(openRaw)
		if err != nil {
			return nil, err
		}
		closeAt, err := parseMinuteOfDay(closeRaw)
		if err != nil {
			return nil, err
		}
		if closeAt <= open {
			return nil, fmt.Errorf("shop hours close before open: %q", entry)
		}
		windows[strings.TrimSpace(name)] = BarberWindow{OpenMinute: open, CloseMinute: closeAt}
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("no shop hours configured")
	}
	return windows, nil
}

// Barbers returns the configured barber names in SHOP_HOURS order.
func (c *ShopConfig) Barbers() []string {
	var names []string
	for _, entry := range strings.Split(c.Hours, ";") {
		if name, _, ok := strings.Cut(strings.TrimSpace(entry), "="); ok {
			names = append(names, strings.TrimSpace(name))
		}
	}
	return names
}

// parseMinuteOfDay accepts "HH:MM"; "24:00" is a valid closing time.
func parseMinuteOfDay(raw string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value: %q", raw)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", raw)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", raw)
	}
	total := h*60 + m
	if h < 0 || m < 0 || m > 59 || total > 24*60 {
		return 0, fmt.Errorf("clock value out of range: %q", raw)
	}
	return total, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Shop.Windows(); err != nil {
		return Config{}, fmt.Errorf("invalid shop hours: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Jakarta",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "WIB",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Shop: ShopConfig{
			TimeZoneName:     "WIB",
			TimeZoneOffset:   25200,
			Hours:            "Arka=10:00-24:00;Kenzo=11:00-24:00",
			SlotStepMinutes:  15,
			DefaultDuration:  45,
			ProfitShareOwner: 53,
			ProfitShareStaff: 42,
			ProfitShareFund:  5,
		},
	}
}
