package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime settings, read from the environment.
type Config struct {
	Port     string
	DBDriver string
	DBDSN    string

	// Spotify client credentials for the ISRC import endpoint.
	// Import is disabled when these are empty.
	SpotifyID     string
	SpotifySecret string
}

func Load() *Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("db_driver", "sqlite")
	// for mysql use e.g. "user:pass@tcp(localhost:3306)/musicstore?charset=utf8mb4&parseTime=True&loc=Local"
	v.SetDefault("db_dsn", "musicstore.db?_foreign_keys=on")
	v.AutomaticEnv()

	return &Config{
		Port:          v.GetString("port"),
		DBDriver:      v.GetString("db_driver"),
		DBDSN:         v.GetString("db_dsn"),
		SpotifyID:     v.GetString("spotify_id"),
		SpotifySecret: v.GetString("spotify_secret"),
	}
}
