package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config is the process-wide configuration, built once at startup and passed
// explicitly to the components that need it.
type Config struct {
	Port     string
	LogLevel string
	LogJSON  bool

	DB      DB
	Session Session
	HTTP    HTTP
}

// DB holds store connection settings. Path is used by sqlite, the rest by mysql.
type DB struct {
	Driver       string
	Path         string
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	MaxOpenConns int
}

// Session holds the signing secret and cookie settings.
type Session struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
	BcryptCost int
}

type HTTP struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

var (
	ErrMissingSecret     = errors.New("session.secret is required")
	ErrUnsupportedDriver = errors.New("unsupported db.driver")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "biotrack.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.name", "")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.max_open_conns", 10)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.cookie_name", "biotrack_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.bcrypt_cost", 0)

	v.SetDefault("http.read_header_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.idle_timeout", "60s")
}

// Load reads configuration from defaults, an optional config.yml in any of
// paths (configs/ when none given), a .env file and the environment, in
// increasing order of precedence. Keys map to env vars by replacing "." with
// "_", so db.host is DB_HOST.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		LogJSON:  strings.EqualFold(v.GetString("log.format"), "json"),
		DB: DB{
			Driver:       strings.ToLower(v.GetString("db.driver")),
			Path:         v.GetString("db.path"),
			Host:         v.GetString("db.host"),
			Port:         v.GetString("db.port"),
			Name:         v.GetString("db.name"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		Session: Session{
			Secret:     v.GetString("session.secret"),
			TTL:        v.GetDuration("session.ttl"),
			CookieName: v.GetString("session.cookie_name"),
			Secure:     v.GetBool("session.secure"),
			BcryptCost: v.GetInt("session.bcrypt_cost"),
		},
		HTTP: HTTP{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return ErrMissingSecret
	}
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("db.path is required for sqlite")
		}
	case DriverMySQL:
		if c.DB.Name == "" || c.DB.User == "" {
			return errors.New("db.name and db.user are required for mysql")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.DB.Driver)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	return nil
}
