package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"go-balance-rates/domain"
	"go-balance-rates/exchange"
	"go-balance-rates/page"
	"os"
	"strconv"
	"strings"
)

// envPrefix prefixes every environment override
const envPrefix = "BALANCE_RATES_"

type Server struct {
	Addr           string   `json:"addr"`
	MaxBodyBytes   int64    `json:"max_body_bytes"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type Policy struct {
	Base     string `json:"base"`
	ForeignA string `json:"foreign_a"`
	ForeignB string `json:"foreign_b"`
	Cross    string `json:"cross"`
	Decimals int    `json:"decimals"`
}

type Config struct {
	Server   Server `json:"server"`
	Policy   Policy `json:"policy"`
	RowMode  string `json:"row_mode"`
	LogLevel string `json:"log_level"`
}

func Default() Config {
	p := exchange.DefaultPolicy()
	return Config{
		Server: Server{Addr: ":8080", MaxBodyBytes: 4 << 20},
		Policy: Policy{
			Base:     string(p.Base),
			ForeignA: string(p.ForeignA),
			ForeignB: string(p.ForeignB),
			Cross:    string(p.Cross),
			Decimals: p.Decimals,
		},
		RowMode:  string(page.RowsReplace),
		LogLevel: "info",
	}
}

// Load reads JSON config from path. If path is empty, config.json is used when present.
// A .env file and environment variables override the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := getEnv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getEnv("MAX_BODY_BYTES"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES: %w", envPrefix, err)
		}
		cfg.Server.MaxBodyBytes = x
	}
	if v := getEnv("CORS_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitCSV(v)
	}
	if v := getEnv("BASE"); v != "" {
		cfg.Policy.Base = v
	}
	if v := getEnv("FOREIGN_A"); v != "" {
		cfg.Policy.ForeignA = v
	}
	if v := getEnv("FOREIGN_B"); v != "" {
		cfg.Policy.ForeignB = v
	}
	if v := getEnv("CROSS"); v != "" {
		cfg.Policy.Cross = v
	}
	if v := getEnv("DECIMALS"); v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sDECIMALS: %w", envPrefix, err)
		}
		cfg.Policy.Decimals = x
	}
	if v := getEnv("ROW_MODE"); v != "" {
		cfg.RowMode = v
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate reports settings the services cannot run with.
func (c Config) Validate() error {
	if _, err := page.ParseRowMode(c.RowMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := level.Parse(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	if c.Policy.Base == "" || c.Policy.ForeignA == "" || c.Policy.ForeignB == "" {
		return errors.New("config: policy currencies must be set")
	}
	return nil
}

// ExchangePolicy the conversion policy described by the config
func (c Config) ExchangePolicy() exchange.Policy {
	return exchange.Policy{
		Base:     domain.Currency(c.Policy.Base),
		ForeignA: domain.Currency(c.Policy.ForeignA),
		ForeignB: domain.Currency(c.Policy.ForeignB),
		Cross:    domain.Currency(c.Policy.Cross),
		Decimals: c.Policy.Decimals,
	}
}

// Mode the validated row mode, RowsReplace when unset
func (c Config) Mode() page.RowMode {
	mode, err := page.ParseRowMode(c.RowMode)
	if err != nil {
		return page.RowsReplace
	}
	return mode
}

// Level the validated log level, info when unset
func (c Config) Level() level.Value {
	v, err := level.Parse(c.LogLevel)
	if err != nil {
		return level.InfoValue()
	}
	return v
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
