package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Configuration struct {
	// DataDir is the directory holding the portal's JSON documents: accounts,
	// profiles, forum topics and the session pointer.
	DataDir string `mapstructure:"data_dir"`
	// DbUrl is the path to the game store database file.
	DbUrl string `mapstructure:"db_url"`
	// MigrationsFolder holds the SQL migrations applied to the game store.
	MigrationsFolder string `mapstructure:"migrations_folder"`
	// Name of the portal.
	Name string `mapstructure:"name"`
	// SessionKey is the secret used to authenticate the browser session cookie.
	SessionKey string `mapstructure:"session_key"`
	Port       uint16 `mapstructure:"port"`
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool `mapstructure:"debug"`
}

// ReadConfig loads the configuration from rogold.toml in the working
// directory, if present, with ROGOLD_* environment variables taking
// precedence. Missing values fall back to local-instance defaults.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("rogold")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("data_dir", "data")
	v.SetDefault("db_url", "rogold.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("name", "RoGold")
	v.SetDefault("session_key", "")
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("rogold")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, err
	}

	if cfg.SessionKey == "" {
		return Configuration{}, errors.New("session_key must be set")
	}

	return cfg, nil
}
