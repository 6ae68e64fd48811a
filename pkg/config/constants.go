package config

// EnvPrefix is applied by envconfig to any field without an explicit tag.
const EnvPrefix = "IMPORTER"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside the struct tags
// (DSN assembly errors, tests).
const (
	EnvAppEnv   = "IMPORTER_APP_ENV"
	EnvLogLevel = "IMPORTER_LOG_LEVEL"

	EnvDBDSN      = "IMPORTER_DB_DSN"
	EnvDBHost     = "IMPORTER_DB_HOST"
	EnvDBPort     = "IMPORTER_DB_PORT"
	EnvDBUser     = "IMPORTER_DB_USER"
	EnvDBPassword = "IMPORTER_DB_PASSWORD"
	EnvDBName     = "IMPORTER_DB_NAME"

	EnvSourcePath      = "IMPORTER_SOURCE_PATH"
	EnvCheckpointEvery = "IMPORTER_CHECKPOINT_EVERY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
