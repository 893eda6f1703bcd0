package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

// InitConfig loads application configuration from the given YAML file, with
// environment variables (e.g. DATABASE_HOST) overriding file values.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional when everything comes from the environment
		log.Printf("config file %s not loaded: %v", configPath, err)
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fleetops")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "fleetops")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "logs/fleetops.log")

	v.SetDefault("stops.default_radius_km", 2.0)
	v.SetDefault("stops.max_radius_km", 50.0)
}
