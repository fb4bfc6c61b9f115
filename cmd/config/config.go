package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("workforce_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
				Timezone: viper.GetString("general.timezone"),
			},
			HTTP: HTTPConfig{
				Addr: viper.GetString("http.addr"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			MailerSend: MailerSendConfig{
				APIKey:    viper.GetString("mailersend.api_key"),
				FromEmail: viper.GetString("mailersend.from_email"),
				FromName:  viper.GetString("mailersend.from_name"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	MailerSend MailerSendConfig
}

type GeneralConfig struct {
	LogLevel string
	Timezone string
}

type HTTPConfig struct {
	Addr string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}
