package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	GinMode          string        `mapstructure:"GIN_MODE"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	KakaoRestAPIKey  string        `mapstructure:"KAKAO_REST_API_KEY"`
	KakaoBaseURL     string        `mapstructure:"KAKAO_BASE_URL"`
	GatewayTimeout   time.Duration `mapstructure:"GATEWAY_TIMEOUT"`
	GatewayCacheSize int           `mapstructure:"GATEWAY_CACHE_SIZE"`
	BatchDelay       time.Duration `mapstructure:"BATCH_DELAY"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFormat        string        `mapstructure:"LOG_FORMAT"`
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing app.env is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("KAKAO_REST_API_KEY", "")
	v.SetDefault("KAKAO_BASE_URL", "https://dapi.kakao.com")
	v.SetDefault("GATEWAY_TIMEOUT", 5*time.Second)
	v.SetDefault("GATEWAY_CACHE_SIZE", 1024)
	v.SetDefault("BATCH_DELAY", 500*time.Millisecond)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
