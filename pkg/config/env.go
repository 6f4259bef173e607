package config

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "INFLUMATCH_DB_DSN"
	EnvDBHost = "INFLUMATCH_DB_HOST"
	EnvDBUser = "INFLUMATCH_DB_USER"
	EnvDBName = "INFLUMATCH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
