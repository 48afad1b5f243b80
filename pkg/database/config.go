package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database configuration. Two roles share one server: the admin
// role owns the schema and bypasses RLS; the app role is subject to the
// row-level-security policies and is what tenant-scoped statements run as.
type Config struct {
	Host     string
	Port     int
	User     string // admin role
	Password string
	AppUser     string // RLS-subject role
	AppPassword string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// AdminDSN returns the connection string for the admin pool.
func (c Config) AdminDSN() string {
	return dsn(c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// AppDSN returns the connection string for the RLS-subject app pool.
func (c Config) AppDSN() string {
	return dsn(c.Host, c.Port, c.AppUser, c.AppPassword, c.Database, c.SSLMode)
}

func dsn(host string, port int, user, password, database, sslmode string) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode,
	)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("DB_USER", "aurora"),
		Password:        os.Getenv("DB_PASSWORD"),
		AppUser:         getEnvOrDefault("DB_APP_USER", "aurora_app"),
		AppPassword:     os.Getenv("DB_APP_PASSWORD"),
		Database:        getEnvOrDefault("DB_NAME", "aurora"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
