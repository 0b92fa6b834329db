package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "SWIFTSHOP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
	AppEnvTest = "test"
)

const (
	EnvAppEnv   = "SWIFTSHOP_APP_ENV"
	EnvLogLevel = "SWIFTSHOP_LOG_LEVEL"

	EnvDBDSN      = "SWIFTSHOP_DB_DSN"
	EnvDBHost     = "SWIFTSHOP_DB_HOST"
	EnvDBPort     = "SWIFTSHOP_DB_PORT"
	EnvDBUser     = "SWIFTSHOP_DB_USER"
	EnvDBPassword = "SWIFTSHOP_DB_PASSWORD"
	EnvDBName     = "SWIFTSHOP_DB_NAME"
	EnvDBSSLMode  = "SWIFTSHOP_DB_SSLMODE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
