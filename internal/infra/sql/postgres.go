package sql

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_pingTimeout = 5 * time.Second
)

func NewPostgresORM(dsn string) (*DB, error) {
	pass, ok := os.LookupEnv("WORKFORCE_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
	}, nil
}

// Pool is a thin pgx connection pool used by the readiness probe, separate
// from the gorm handle so a wedged ORM session cannot mask a dead database.
type Pool struct {
	conn *pgxpool.Pool
}

func NewPool(ctx context.Context, url string) (*Pool, error) {
	conn, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}

	return &Pool{conn: conn}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, _pingTimeout)
	defer cancel()

	if err := p.conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}

func (p *Pool) Close() {
	p.conn.Close()
}
