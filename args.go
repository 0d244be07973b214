package main

import (
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"folio/api"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")
	pflag.String("env", envDevelopment, "development or production")

	// session config
	pflag.String("session-secret", "", "comma separated secrets, the first one is used for encryption")
	pflag.String("session-cookie-name", "__session", "")
	pflag.Duration("session-max-age", 30*24*time.Hour, "")

	// counter config
	pflag.String("counter-storage", api.CounterStorageMemory, "memory, redis, postgres or sqlite")
	pflag.Bool("counter-distributed-lock", false, "serialize counter updates across replicas with a redis lock, required by redis and postgres storage")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "public", "")
	pflag.String("sqlite-path", "folio.db", "")

	// redis config
	pflag.String("redis-addr", "", "")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 0, "")
	pflag.String("redis-key-prefix", "folio:", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("FOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL: viper.GetString("server-url"),
		Env:       viper.GetString("env"),
		ServerConfig: api.ServerConfig{
			Production: viper.GetString("env") == envProduction,
			Public:     api.PublicEnv(os.Environ()),
			Session: api.SessionConfig{
				Secrets:      splitSecrets(viper.GetString("session-secret")),
				KeyForCookie: viper.GetString("session-cookie-name"),
				CookieMaxAge: viper.GetDuration("session-max-age"),
			},
			Counter: api.CounterConfig{
				Storage:         viper.GetString("counter-storage"),
				DistributedLock: viper.GetBool("counter-distributed-lock"),
			},
			DB: api.DBConfig{
				User:     viper.GetString("db-user"),
				Password: viper.GetString("db-password"),
				Host:     viper.GetString("db-host"),
				Port:     viper.GetInt("db-port"),
				Database: viper.GetString("db-database"),
				Schema:   viper.GetString("db-schema"),
			},
			SQLite: api.SQLiteConfig{
				Path: viper.GetString("sqlite-path"),
			},
			Redis: api.RedisConfig{
				Addr:      viper.GetString("redis-addr"),
				Password:  viper.GetString("redis-password"),
				DB:        viper.GetInt("redis-db"),
				KeyPrefix: viper.GetString("redis-key-prefix"),
			},
		},
	}
}

type Args struct {
	ServerURL    string
	Env          string
	ServerConfig api.ServerConfig
}

func splitSecrets(value string) []string {
	secrets := lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(secrets)
}

func (args Args) Validate() bool {
	config := args.ServerConfig
	if args.ServerURL == "" || !lo.Contains([]string{envDevelopment, envProduction}, args.Env) {
		return false
	}
	// 正式環境必須設定 session secret
	if config.Production && len(config.Session.Secrets) == 0 {
		return false
	}
	switch config.Counter.Storage {
	case api.CounterStorageMemory:
	case api.CounterStorageRedis:
		if config.Redis.Addr == "" {
			return false
		}
	case api.CounterStoragePostgres:
		if config.DB.Host == "" || config.DB.User == "" || config.DB.Database == "" {
			return false
		}
	case api.CounterStorageSQLite:
		if config.SQLite.Path == "" {
			return false
		}
	default:
		return false
	}
	// 共用的儲存必須搭配分散式鎖
	if api.SharedCounterStorage(config.Counter.Storage) && !config.Counter.DistributedLock {
		return false
	}
	return !config.Counter.DistributedLock || config.Redis.Addr != ""
}
