package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contiene toda la configuración de la aplicación
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Logger   LoggerConfig
}

// ServerConfig contiene los ajustes del servidor HTTP
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig contiene los ajustes de conexión a PostgreSQL
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig contiene los ajustes de conexión a Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig contiene los ajustes de la sesión por contraseña compartida
type AuthConfig struct {
	// AppPassword - contraseña única de acceso a la aplicación
	AppPassword string
	// AppPasswordHash - alternativa con bcrypt; si está definida tiene prioridad
	AppPasswordHash string
	// TokenSecret - clave HMAC del token de sesión
	TokenSecret string
	// SessionTTL - vida de la sesión (explícita, no los 7 días implícitos de antes)
	SessionTTL time.Duration
	// CookieName - nombre de la cookie que transporta el token
	CookieName string
	// CookieSecure - marca Secure en la cookie (desactivar solo en local)
	CookieSecure bool
	// PrincipalEmail - cuenta de la tabla users que representa la sesión, si existe
	PrincipalEmail string
}

// CORSConfig contiene los ajustes de CORS
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// LoggerConfig contiene los ajustes de logging
type LoggerConfig struct {
	Level  string
	Format string // json o console
	Output string // stdout o ruta a fichero
}

// Load carga la configuración desde variables de entorno
func Load() (*Config, error) {
	// Cargamos el fichero .env (se ignora el error si no existe)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "vans_user"),
			Password:        getEnv("DB_PASSWORD", "vans_password"),
			Database:        getEnv("DB_NAME", "vans_db"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			AppPassword:     getEnv("AUTH_APP_PASSWORD", "admin123"),
			AppPasswordHash: getEnv("AUTH_APP_PASSWORD_HASH", ""),
			TokenSecret:     getEnv("AUTH_TOKEN_SECRET", "change-this-secret-in-production"),
			SessionTTL:      getDurationEnv("AUTH_SESSION_TTL", 24*time.Hour),
			CookieName:      getEnv("AUTH_COOKIE_NAME", "vans_session"),
			CookieSecure:    getBoolEnv("AUTH_COOKIE_SECURE", true),
			PrincipalEmail:  getEnv("AUTH_PRINCIPAL_EMAIL", "app@fleet.local"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
			},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	return cfg, nil
}

// DSN devuelve la cadena de conexión a PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Address devuelve la dirección del servidor
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Address devuelve la dirección de Redis
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Funciones auxiliares para leer variables de entorno

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
