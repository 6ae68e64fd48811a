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
	Source       SourceConfig
	Import       ImportConfig
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
	Env          string `envconfig:"IMPORTER_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"IMPORTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"IMPORTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"IMPORTER_DB_DSN"`
	Driver string `envconfig:"IMPORTER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"IMPORTER_DB_HOST"`
	LegacyPort     int    `envconfig:"IMPORTER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"IMPORTER_DB_USER"`
	LegacyPassword string `envconfig:"IMPORTER_DB_PASSWORD"`
	LegacyName     string `envconfig:"IMPORTER_DB_NAME"`
	LegacySSLMode  string `envconfig:"IMPORTER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"IMPORTER_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"IMPORTER_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"IMPORTER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"IMPORTER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// SourceConfig locates the order export file to ingest.
type SourceConfig struct {
	Path      string `envconfig:"IMPORTER_SOURCE_PATH"`
	Delimiter string `envconfig:"IMPORTER_SOURCE_DELIMITER" default:";"`
}

// ImportConfig tunes the load loop.
type ImportConfig struct {
	// CheckpointEvery commits the open transaction after this many newly
	// inserted orders, bounding re-work on failure.
	CheckpointEvery  int           `envconfig:"IMPORTER_CHECKPOINT_EVERY" default:"100"`
	StatementTimeout time.Duration `envconfig:"IMPORTER_STATEMENT_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"IMPORTER_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
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
