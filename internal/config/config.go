package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих файл конфигурации
// Ключ собирается из секции и имени поля: ARENA_DATABASE_PASSWORD, ARENA_REDIS_ADDR,
// ARENA_DATABASE_DB_NAME. Переменные без префикса (PATH, USER) не читаются.
const EnvPrefix = "ARENA"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" split_words:"true"`
	Database DatabaseConfig `toml:"database" split_words:"true"`
	Logs     LogsConfig     `toml:"logs" split_words:"true"`
	Metrics  MetricsConfig  `toml:"metrics" split_words:"true"`
	Redis    RedisConfig    `toml:"redis" split_words:"true"`
	Events   EventsConfig   `toml:"events" split_words:"true"`
	Booking  BookingConfig  `toml:"booking" split_words:"true"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает строку подключения в формате URL для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// RedisConfig настройки кэша площадок
type RedisConfig struct {
	Enabled    bool   `toml:"enabled" split_words:"true"`
	Addr       string `toml:"addr" split_words:"true"`
	Password   string `toml:"password" split_words:"true"`
	DB         int    `toml:"db" split_words:"true"`
	TTLSeconds int    `toml:"ttl_seconds" split_words:"true"`
}

// TTL возвращает время жизни записи кэша
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// EventsConfig настройки публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled        bool   `toml:"enabled" split_words:"true"`
	URL            string `toml:"url" split_words:"true"`
	Exchange       string `toml:"exchange" split_words:"true"`
	PublishTimeout int    `toml:"publish_timeout" split_words:"true"` // секунды
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	PendingTTLMinutes  int    `toml:"pending_ttl_minutes" split_words:"true"`
	ExpirySchedule     string `toml:"expiry_schedule" split_words:"true"`
	AdvanceBookingDays int    `toml:"advance_booking_days" split_words:"true"`
	Timezone           string `toml:"timezone" split_words:"true"`
}

// PendingTTL возвращает время жизни неподтвержденного бронирования
func (b BookingConfig) PendingTTL() time.Duration {
	return time.Duration(b.PendingTTLMinutes) * time.Minute
}

// Location возвращает часовой пояс арены
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// Load загружает конфигурацию: .env рядом с файлом, TOML файл, переменные окружения ARENA_*
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "arena_booking_service"
	}
	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 300
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = "arena.bookings"
	}
	if c.Events.PublishTimeout == 0 {
		c.Events.PublishTimeout = 5
	}
	if c.Booking.PendingTTLMinutes == 0 {
		c.Booking.PendingTTLMinutes = domain.DefaultPendingTTLMinutes
	}
	if c.Booking.ExpirySchedule == "" {
		c.Booking.ExpirySchedule = "@every 1m"
	}
	if c.Booking.AdvanceBookingDays == 0 {
		c.Booking.AdvanceBookingDays = 30
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.Port <= 0 {
		return errors.New("database port is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database name is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis addr is required when redis is enabled")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return errors.New("events url is required when events are enabled")
	}
	if c.Booking.PendingTTLMinutes < 0 {
		return errors.New("booking pending ttl must not be negative")
	}
	if c.Booking.AdvanceBookingDays < 0 {
		return errors.New("booking advance days must not be negative")
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("booking timezone: %w", err)
	}
	return nil
}
