package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Log    LogConfig
	Order  OrderConfig
}

type ServerConfig struct {
	Port int
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type OrderConfig struct {
	// NumberPrefix is the organization short code leading every order
	// number (PREFIX-YYYY-NNN).
	NumberPrefix string
}

func Load() (*Config, error) {
	_ = godotenv.Load() // load .env if it exists
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "voltline")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ORDER_NUMBER_PREFIX", "EMH")

	connectTimeout, err := time.ParseDuration(viper.GetString("MONGO_CONNECT_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DATABASE"),
			ConnectTimeout: connectTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Order: OrderConfig{
			NumberPrefix: viper.GetString("ORDER_NUMBER_PREFIX"),
		},
	}

	return cfg, nil
}
