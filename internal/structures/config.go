package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type HTTPStoreConfig struct {
	BaseURL string `yaml:"baseURL"`
	Token   string `yaml:"token"`
}

type RedisStoreConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type FileStoreConfig struct {
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
}

type StoreConfig struct {
	Driver         string           `yaml:"driver" validate:"required|in:http,redis,file"`
	Key            string           `yaml:"key"`
	Timeout        time.Duration    `yaml:"timeout"`
	SaveOnShutdown bool             `yaml:"saveOnShutdown"`
	HTTP           HTTPStoreConfig  `yaml:"http"`
	Redis          RedisStoreConfig `yaml:"redis"`
	File           FileStoreConfig  `yaml:"file"`
}

type EmptyDayConfig struct {
	OnDelete string `yaml:"onDelete" validate:"in:placeholder,remove"`
	OnMove   string `yaml:"onMove" validate:"in:placeholder,remove"`
}

type ScheduleConfig struct {
	EmptyDay EmptyDayConfig `yaml:"emptyDay"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Store     StoreConfig    `yaml:"store"`
	Schedule  ScheduleConfig `yaml:"schedule"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
