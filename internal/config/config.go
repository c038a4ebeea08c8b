package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Storage  StorageConfig   `toml:"storage"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Schedule ScheduleConfig  `toml:"schedule"`
	Services []ServiceConfig `toml:"services"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type StorageConfig struct {
	Driver string `toml:"driver"` // postgres | memory
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type ScheduleConfig struct {
	Timezone        string         `toml:"timezone"`
	SlotStepMinutes int            `toml:"slot_step_minutes"`
	Windows         []WindowConfig `toml:"windows"`
}

// WindowConfig часы работы одного дня; day - словенское название дня
type WindowConfig struct {
	Day    string `toml:"day"`
	Period string `toml:"period"`
	Open   string `toml:"open"`
	Close  string `toml:"close"`
}

type ServiceConfig struct {
	Key         string   `toml:"key"`
	Title       string   `toml:"title"`
	MinDuration int      `toml:"min_duration"`
	MaxDuration int      `toml:"max_duration"`
	Step        int      `toml:"step"`
	PriceFrom   *float64 `toml:"price_from"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Schedule: ScheduleConfig{
			Timezone:        domain.DefaultTimezone,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
		},
	}
}

func (c *Config) applyEnv() error {
	intVars := map[string]*int{
		"PORT":    &c.Server.HTTPPort,
		"DB_PORT": &c.Database.Port,
	}
	for name, dst := range intVars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, name, v)
			}
			*dst = parsed
		}
	}

	strVars := map[string]*string{
		"DB_HOST":        &c.Database.Host,
		"DB_USER":        &c.Database.User,
		"DB_PASSWORD":    &c.Database.Password,
		"DB_NAME":        &c.Database.DBName,
		"STORAGE_DRIVER": &c.Storage.Driver,
		"LOG_LEVEL":      &c.Logs.Level,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}

	return nil
}

// Validate проверяет значения, которые не проверяются при сборке доменных объектов
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: schedule.slot_step_minutes must be positive", ErrInvalidConfig)
	}

	return nil
}

// Location часовой пояс салона
func (c *Config) Location() (*time.Location, error) {
	if c.Schedule.Timezone == "" || c.Schedule.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.timezone=%q: %v", ErrInvalidConfig, c.Schedule.Timezone, err)
	}
	return loc, nil
}

// OpeningHours собирает таблицу часов работы; без окон в конфиге используется расписание по умолчанию
func (c *Config) OpeningHours() (domain.OpeningHours, error) {
	if len(c.Schedule.Windows) == 0 {
		return domain.NewOpeningHours(domain.DefaultWindows())
	}

	windows := make([]domain.Window, 0, len(c.Schedule.Windows))
	for _, w := range c.Schedule.Windows {
		weekday, ok := domain.ParseWeekday(w.Day)
		if !ok {
			return domain.OpeningHours{}, fmt.Errorf("%w: unknown day %q", ErrInvalidConfig, w.Day)
		}

		open, err := types.NewTimeStringFromString(w.Open)
		if err != nil {
			return domain.OpeningHours{}, fmt.Errorf("%w: %s open: %v", ErrInvalidConfig, w.Day, err)
		}
		closeAt, err := types.NewTimeStringFromString(w.Close)
		if err != nil {
			return domain.OpeningHours{}, fmt.Errorf("%w: %s close: %v", ErrInvalidConfig, w.Day, err)
		}

		windows = append(windows, domain.Window{
			Weekday: weekday,
			Period:  w.Period,
			Open:    open,
			Close:   closeAt,
		})
	}

	return domain.NewOpeningHours(windows)
}

// Catalog собирает каталог услуг; без услуг в конфиге используется каталог по умолчанию
func (c *Config) Catalog() (domain.Catalog, error) {
	if len(c.Services) == 0 {
		return domain.NewCatalog(domain.DefaultServices())
	}

	services := make([]domain.Service, len(c.Services))
	for i, s := range c.Services {
		services[i] = domain.Service{
			Key:         s.Key,
			Title:       s.Title,
			MinDuration: s.MinDuration,
			MaxDuration: s.MaxDuration,
			Step:        s.Step,
			PriceFrom:   s.PriceFrom,
		}
	}

	return domain.NewCatalog(services)
}
