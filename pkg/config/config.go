package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Inventory    InventoryConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROCERHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"GROCERHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GROCERHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GROCERHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GROCERHUB_DB_DSN"`
	Driver string `envconfig:"GROCERHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GROCERHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"GROCERHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GROCERHUB_DB_USER"`
	LegacyPassword string `envconfig:"GROCERHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"GROCERHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"GROCERHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GROCERHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GROCERHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GROCERHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GROCERHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the local file-backed driver is selected. Postgres
// is the production store; sqlite exists for local development only.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type InventoryConfig struct {
	LowStockThreshold int `envconfig:"GROCERHUB_INVENTORY_LOW_STOCK_THRESHOLD" default:"10"`
	DefaultStockQty   int `envconfig:"GROCERHUB_INVENTORY_DEFAULT_STOCK_QTY" default:"100"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GROCERHUB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
