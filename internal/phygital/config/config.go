package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                   string
	MongoURI              string
	Port                  string
	DBName                string
	UsersCollection       string
	HealthCheckCollection string
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	RPCTimeout            time.Duration
	RecordHealthChecks    bool
	LogLevel              string
}

func LoadConfig() (*Config, error) {
	env := strings.ToLower(getEnv("GO_ENV", "development"))

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" && env != "production" {
		// local default; production must set MONGO_URI explicitly
		mongoURI = "mongodb://localhost:27017"
	}

	cfg := &Config{
		Env:                   env,
		MongoURI:              mongoURI,
		Port:                  getEnv("PORT", "8080"),
		DBName:                getEnv("DB_NAME", "phygital"),
		UsersCollection:       getEnv("COLLECTION_USERS", "users"),
		HealthCheckCollection: getEnv("COLLECTION_HEALTH_CHECKS", "chain_health_checks"),
		ReadTimeout:           getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:          getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		RPCTimeout:            getEnvDuration("RPC_TIMEOUT", 10*time.Second),
		RecordHealthChecks:    getEnvBool("RECORD_HEALTH_CHECKS", true),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.RPCTimeout <= 0 {
		return fmt.Errorf("RPC_TIMEOUT must be positive")
	}
	// the RPC deadline has to fit inside the response deadline
	if c.WriteTimeout > 0 && c.RPCTimeout >= c.WriteTimeout {
		return fmt.Errorf("RPC_TIMEOUT (%s) must be shorter than SERVER_WRITE_TIMEOUT (%s)", c.RPCTimeout, c.WriteTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// also accept duration strings such as "1500ms"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}
