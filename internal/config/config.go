package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Tavily struct {
		APIKey  string
		BaseURL string
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("tavily.base_url", "https://api.tavily.com")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Tavily.BaseURL = viper.GetString("tavily.base_url")
	if url := os.Getenv("TAVILY_BASE_URL"); url != "" {
		config.Tavily.BaseURL = url
	}
	config.Tavily.APIKey = os.Getenv("TAVILY_API_KEY")

	return &config, nil
}

func (c *Config) ValidateTavily() error {
	if c.Tavily.APIKey == "" {
		return fmt.Errorf("TAVILY_API_KEY is required")
	}
	if c.Tavily.BaseURL == "" {
		return fmt.Errorf("TAVILY_BASE_URL is required")
	}
	return nil
}
