package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cliente  ClienteConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ClienteConfig controla a política de exclusão de clientes: com
// ExclusaoCascata ativa, as transações do cliente são removidas junto;
// desativada, a exclusão é recusada enquanto houver transações.
type ClienteConfig struct {
	ExclusaoCascata bool
}

func Load() (*Config, error) {
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "gestao_cacau"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Cliente: ClienteConfig{
			ExclusaoCascata: getEnv("EXCLUSAO_CASCATA", "false") == "true",
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
