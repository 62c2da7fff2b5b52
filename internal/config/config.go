package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, переопределяющие значения из файла
const (
	EnvConfigPath = "CONFIG_PATH"
	EnvDBPassword = "DB_PASSWORD"
	EnvJWTSecret  = "JWT_SECRET"
)

// DefaultPath путь к конфигурации по умолчанию
const DefaultPath = "config.toml"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Notifier NotifierConfig `toml:"notifier"`
	App      AppConfig      `toml:"app"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	TxMaxRetries    int    `toml:"tx_max_retries"`    // повторы сериализуемой транзакции
}

// LogsConfig параметры логгера
type LogsConfig struct {
	File   string `toml:"file"` // пусто - только stdout
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры аутентификации администраторов
type AuthConfig struct {
	JWTSecret        string `toml:"jwt_secret"`
	TokenTTLHours    int    `toml:"token_ttl_hours"`
	LoginMaxAttempts int    `toml:"login_max_attempts"`
	LoginWindowMin   int    `toml:"login_window_min"`
}

// NotifierConfig параметры уведомлений об отмене
type NotifierConfig struct {
	Backend      string   `toml:"backend"` // log | webhook | kafka
	Timeout      int      `toml:"timeout"` // секунды
	WebhookURL   string   `toml:"webhook_url"`
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`
}

// AppConfig прикладные параметры
type AppConfig struct {
	Timezone string `toml:"timezone"` // IANA, например Europe/Paris
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 30)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	setDefault(&c.Database.TxMaxRetries, 3)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "text"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bookeasy"
	}

	setDefault(&c.Auth.TokenTTLHours, 7*24)
	setDefault(&c.Auth.LoginMaxAttempts, 5)
	setDefault(&c.Auth.LoginWindowMin, 15)

	if c.Notifier.Backend == "" {
		c.Notifier.Backend = "log"
	}
	setDefault(&c.Notifier.Timeout, 10)
	if c.Notifier.KafkaTopic == "" {
		c.Notifier.KafkaTopic = "booking.cancelled"
	}

	if c.App.Timezone == "" {
		c.App.Timezone = "UTC"
	}
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate проверяет значения конфигурации и возвращает все ошибки разом
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required (or %s)", EnvJWTSecret))
	}

	switch c.Logs.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logs.format must be text or json, got %q", c.Logs.Format))
	}

	switch c.Notifier.Backend {
	case "log":
	case "webhook":
		if c.Notifier.WebhookURL == "" {
			errs = append(errs, errors.New("notifier.webhook_url is required for webhook backend"))
		}
	case "kafka":
		if len(c.Notifier.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("notifier.kafka_brokers is required for kafka backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("notifier.backend must be log, webhook or kafka, got %q", c.Notifier.Backend))
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("app.timezone: %w", err))
	}

	return errors.Join(errs...)
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", d.Host),
		fmt.Sprintf("port=%d", d.Port),
		fmt.Sprintf("user=%s", d.User),
		fmt.Sprintf("dbname=%s", d.DBName),
		fmt.Sprintf("sslmode=%s", d.SSLMode),
	}
	if d.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", quoteDSN(d.Password)))
	}
	return strings.Join(parts, " ")
}

// quoteDSN экранирует значение по правилам libpq key=value
func quoteDSN(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Location часовой пояс сервиса
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// TokenTTL срок жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoginWindow окно ограничения попыток входа
func (a AuthConfig) LoginWindow() time.Duration {
	return time.Duration(a.LoginWindowMin) * time.Minute
}
