package providers

import (
	"fmt"
	"path/filepath"
	"streamsched/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultStoreKey = "stream-schedule"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("store.key", DefaultStoreKey)
	v.SetDefault("store.timeout", 10*time.Second)
	v.SetDefault("schedule.emptyDay.onDelete", "placeholder")
	v.SetDefault("schedule.emptyDay.onMove", "remove")
	v.SetDefault("cache.ttl", time.Minute)

	v.BindEnv("logger.level", "STREAMSCHED_LOG_LEVEL")
	v.BindEnv("store.driver", "STREAMSCHED_STORE_DRIVER")
	v.BindEnv("store.timeout", "STREAMSCHED_STORE_TIMEOUT")
	v.BindEnv("store.http.baseURL", "STREAMSCHED_STORE_URL")
	v.BindEnv("store.http.token", "STREAMSCHED_STORE_TOKEN")
	v.BindEnv("store.redis.addr", "STREAMSCHED_REDIS_ADDR")
	v.BindEnv("store.redis.password", "STREAMSCHED_REDIS_PASSWORD")
	v.BindEnv("cache.enabled", "STREAMSCHED_CACHE_ENABLED")
	v.BindEnv("cache.size", "STREAMSCHED_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "StreamScheduleDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
