// Package config carrega a configuração da aplicação a partir de variáveis
// de ambiente, com prefixo "TASKS" e valores padrão para desenvolvimento.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config agrupa toda a configuração da aplicação.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Mongo    MongoConfig
}

// ServerConfig são os parâmetros do servidor HTTP.
type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// PostgresConfig são os parâmetros de conexão com o PostgreSQL.
type PostgresConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name            string        `envconfig:"DB_NAME" default:"tasks"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// MongoConfig são os parâmetros de conexão com o MongoDB, onde vive a trilha
// de auditoria das tarefas.
type MongoConfig struct {
	URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"MONGO_DB" default:"tasks"`
}

// DSN devolve a string de conexão do PostgreSQL.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr devolve o endereço do servidor no formato host:porta.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração das variáveis de ambiente. As seções são
// processadas separadamente para achatar os nomes (TASKS_DB_HOST em vez de
// TASKS_POSTGRES_DB_HOST).
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TASKS", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("TASKS", &cfg.Postgres); err != nil {
		return nil, fmt.Errorf("failed to load postgres config: %w", err)
	}
	if err := envconfig.Process("TASKS", &cfg.Mongo); err != nil {
		return nil, fmt.Errorf("failed to load mongo config: %w", err)
	}

	return &cfg, nil
}
