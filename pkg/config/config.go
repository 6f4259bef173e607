package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"INFLUMATCH_APP_ENV" required:"true"`
	Port         string `envconfig:"INFLUMATCH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"INFLUMATCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INFLUMATCH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"INFLUMATCH_DB_DSN"`
	Driver string `envconfig:"INFLUMATCH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"INFLUMATCH_DB_HOST"`
	LegacyPort     int    `envconfig:"INFLUMATCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"INFLUMATCH_DB_USER"`
	LegacyPassword string `envconfig:"INFLUMATCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"INFLUMATCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"INFLUMATCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"INFLUMATCH_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"INFLUMATCH_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"INFLUMATCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"INFLUMATCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
	ConnectTimeout  time.Duration `envconfig:"INFLUMATCH_DB_CONNECT_TIMEOUT" default:"20s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"INFLUMATCH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"INFLUMATCH_REDIS_ADDR"`
	Password     string        `envconfig:"INFLUMATCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"INFLUMATCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INFLUMATCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INFLUMATCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INFLUMATCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INFLUMATCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"INFLUMATCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"INFLUMATCH_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"INFLUMATCH_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"INFLUMATCH_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// AccessTokenTTL returns the configured token lifetime (defaults to 7 days).
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"INFLUMATCH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"INFLUMATCH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"INFLUMATCH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"INFLUMATCH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"INFLUMATCH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"INFLUMATCH_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"INFLUMATCH_AUTO_MIGRATE" default:"false"`
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

	q := u.Query()
	if db.LegacySSLMode != "" {
		q.Set("sslmode", db.LegacySSLMode)
	}
	if db.ConnectTimeout > 0 {
		q.Set("connect_timeout", fmt.Sprintf("%d", int(db.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()

	db.DSN = u.String()
	return nil
}
