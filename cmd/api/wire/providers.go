package wire

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"workforce-server/cmd/config"
	"workforce-server/internal/infra/cache"
	"workforce-server/internal/infra/notification"
	"workforce-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

var databaseOnce sync.Once
var databaseInstance sql.ORM

// provideDatabase hands every injector the same ORM handle so the in-memory
// database used by ENV=local stays consistent across controllers.
func provideDatabase(cfg config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		env, ok := os.LookupEnv("ENV")
		if !ok {
			env = "production"
		}

		if env == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}
			databaseInstance = orm
			return
		}

		orm, err := sql.NewPostgresORM(cfg.Postgresql.DSN)
		if err != nil {
			panic(err)
		}
		databaseInstance = orm
	})

	return databaseInstance
}

var poolOnce sync.Once
var poolInstance *sql.Pool

func providePool(cfg config.AppConfig) *sql.Pool {
	poolOnce.Do(func() {
		pool, err := sql.NewPool(context.Background(), cfg.Postgresql.URL)
		if err != nil {
			panic(err)
		}
		poolInstance = pool
	})

	return poolInstance
}

var schemaCacheOnce sync.Once
var schemaCacheInstance cache.Cache

func provideSchemaCache(cfg config.AppConfig) cache.Cache {
	schemaCacheOnce.Do(func() {
		if cfg.Redis.Addr != "" {
			redisCache, err := cache.NewRedisCache(cache.RedisConfig{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err == nil {
				schemaCacheInstance = redisCache
				return
			}
			slog.Warn("redis unavailable, falling back to in-process schema cache", slog.String("error", err.Error()))
		}

		localCache, err := cache.New(nil)
		if err != nil {
			panic(err)
		}
		schemaCacheInstance = localCache
	})

	return schemaCacheInstance
}

func provideLocation(cfg config.AppConfig) *time.Location {
	if cfg.General.Timezone == "" {
		return time.UTC
	}

	location, err := time.LoadLocation(cfg.General.Timezone)
	if err != nil {
		panic(err)
	}

	return location
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	return notification.NewMailerSendClient(notification.MailerSendConfig{
		APIKey:    cfg.MailerSend.APIKey,
		FromEmail: cfg.MailerSend.FromEmail,
		FromName:  cfg.MailerSend.FromName,
	})
}
