package config

const (
	EnvPrefix = "GROCERHUB"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv = "GROCERHUB_APP_ENV"
	EnvPort   = "GROCERHUB_APP_PORT"
	EnvDBDSN  = "GROCERHUB_DB_DSN"
	EnvDBHost = "GROCERHUB_DB_HOST"
	EnvDBUser = "GROCERHUB_DB_USER"
	EnvDBName = "GROCERHUB_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
