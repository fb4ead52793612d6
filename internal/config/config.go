package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
		// TokenLifespan is the session token expiry. The legacy deployment used
		// 720000s; set 2h for short sessions.
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
		Header        string        `mapstructure:"header"`
	} `mapstructure:"auth"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

// LoadConfig reads .env and config.yaml from the given directories (the
// working directory when none are passed) and applies environment overrides.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	v := viper.New()
	for _, p := range paths {
		if loadErr := godotenv.Load(strings.TrimSuffix(p, "/") + "/.env"); loadErr == nil {
			break
		}
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if readErr := v.ReadInConfig(); readErr != nil {
		log.Printf("note: config.yaml not found, using defaults and environment: %v", readErr)
	}

	v.SetDefault("app.port", "5000")
	v.SetDefault("app.env", "development")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("kafka.group_id", "account-cleanup-group")
	v.SetDefault("auth.token_lifespan", "200h")
	v.SetDefault("auth.header", "jwtToken")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("app.port", "APP_PORT", "PORT")
	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("db.driver", "DB_DRIVER")
	_ = v.BindEnv("db.dsn", "DB_DSN")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	_ = v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	_ = v.BindEnv("auth.header", "AUTH_HEADER")
	_ = v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}

	// KAFKA_BROKERS arrives as a single comma separated string.
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}
	return cfg, nil
}
