package util

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool"`
}

// ConnString renders the config as a pgx connection URL.
func (c PostgresDatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		url.PathEscape(c.User),
		url.PathEscape(c.Password),
		url.PathEscape(c.Host),
		c.Port,
		url.PathEscape(c.Database),
		url.QueryEscape(c.SSLMode),
		c.PoolSize,
	)
}

func NewPostgresDBPool(config PostgresDatabaseConfig) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(
		context.Background(),
		config.ConnString(),
	)
	if err != nil {
		return nil, fmt.Errorf("open connection to database: %w", err)
	}

	if err := dbPool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return dbPool, nil
}
