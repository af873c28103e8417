package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zodyking/textnow-gateway/internal/service"
	"github.com/zodyking/textnow-gateway/pkg/sqlite"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
	"github.com/zodyking/textnow-gateway/pkg/tts"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Database sqlite.Config      `mapstructure:"database"`
	Upstream textnow.Config     `mapstructure:"upstream"`
	Send     service.SendConfig `mapstructure:"send"`
	TTS      TTS                `mapstructure:"tts"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type TTS struct {
	// Provider selects the synthesis backend, "gemini" or "openai".
	Provider string           `mapstructure:"provider"`
	Gemini   tts.GeminiConfig `mapstructure:"gemini"`
	OpenAI   tts.OpenAIConfig `mapstructure:"openai"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("database.path", "data/gateway.db")
	viper.SetDefault("upstream.base_url", "https://www.textnow.com")
	viper.SetDefault("upstream.timeout", "30s")
	viper.SetDefault("send.caption_delay", "10s")
	viper.SetDefault("tts.provider", "gemini")

	viper.SetEnvPrefix("GATEWAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
