package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type JWT struct {
	Secret   string
	Issuer   string
	ExpHours int
}

// Bootstrap describes the admin account ensured at startup. Disabled when
// Email is empty.
type Bootstrap struct {
	Name     string
	Email    string
	Password string
}

type Config struct {
	HTTP      HTTP
	DB        DB
	Redis     Redis
	JWT       JWT
	Bootstrap Bootstrap
	LogLevel  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 4000)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "taskboard")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "taskboard")
	v.SetDefault("jwt.exp_hours", 168) // 7 days
	v.SetDefault("bootstrap.name", "Admin")
	v.SetDefault("bootstrap.email", "")
	v.SetDefault("bootstrap.password", "")
	v.SetDefault("log.level", "info")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Host: v.GetString("db.host"),
			Port: v.GetInt("db.port"),
			User: v.GetString("db.user"),
			Pass: v.GetString("db.pass"),
			Name: v.GetString("db.name"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWT{
			Secret:   v.GetString("jwt.secret"),
			Issuer:   v.GetString("jwt.issuer"),
			ExpHours: v.GetInt("jwt.exp_hours"),
		},
		Bootstrap: Bootstrap{
			Name:     v.GetString("bootstrap.name"),
			Email:    v.GetString("bootstrap.email"),
			Password: v.GetString("bootstrap.password"),
		},
		LogLevel: v.GetString("log.level"),
	}
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TASKBOARD")
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// Missing file falls back to defaults + env.
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

// Load reads the yaml config at path, layered under TASKBOARD_* env
// overrides and built-in defaults. An absent file is not an error.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

// Watch re-reads the config file on change and invokes onChange with the
// fresh snapshot. Only write/create events trigger a reload.
func Watch(path string, onChange func(*Config)) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(fromViper(v))
	})
	v.WatchConfig()
	return nil
}
