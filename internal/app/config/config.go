package config

import (
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	loaderInstance *viper.Viper
	onceLoader     sync.Once
)

var defaults = map[string]interface{}{
	"app.env":                             "development",
	"app.port":                            ":8080",
	"app.version":                         "v1",
	"app.timezone":                        "UTC",
	"app.endpoint_prefix":                 "api",
	"app.cors_allowed_origins":            []string{"*"},
	"app.max_requests":                    100,
	"app.shutdown_timeout":                10,
	"app.request_timeout_in_seconds":      10,
	"app.login_max_attempts":              5,
	"app.login_window_in_seconds":         300,
	"app.appointment_lock_in_seconds":     5,
	"app.event_publish_timeout_in_second": 5,

	"jwt.secret":          "",
	"jwt.expiry_in_hours": 24,

	"minio.bucket_name":            "mamacare",
	"minio.public_base_url":        "http://localhost:9000",
	"minio.profile_picture_folder": "profile-pictures",

	"rabbitmq.event_exchange":     "appointment.events",
	"rabbitmq.notification_queue": "appointment.notifications",

	"mongodb.host":     "localhost",
	"mongodb.port":     "27017",
	"mongodb.username": "",
	"mongodb.password": "",
	"mongodb.db_name":  "mamacare",

	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"logger.level":                  "info",
	"logger.output_file_name":       "logs/app.log",
	"logger.output_error_file_name": "logs/error.log",

	"rabbitmq.host":     "localhost",
	"rabbitmq.port":     "5672",
	"rabbitmq.username": "guest",
	"rabbitmq.password": "guest",

	"minio.host":     "localhost",
	"minio.port":     "9000",
	"minio.username": "minioadmin",
	"minio.password": "minioadmin",
	"minio.use_ssl":  false,
}

// loader reads .env once and resolves every key from the environment, so
// app.port is read from APP_PORT.
func loader() *viper.Viper {
	onceLoader.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, reading configuration from environment")
		}

		v := viper.New()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		for key, value := range defaults {
			v.SetDefault(key, value)
		}
		loaderInstance = v
	})
	return loaderInstance
}

func NewInternalConfig() *InternalConfig {
	internalConfig := new(InternalConfig)
	if err := loader().Unmarshal(internalConfig); err != nil {
		log.Fatalf("Error while parsing internal config: %v", err)
	}
	if internalConfig.JWT.Secret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}
	return internalConfig
}

func NewDriverConfig() *DriverConfig {
	driverConfig := new(DriverConfig)
	if err := loader().Unmarshal(driverConfig); err != nil {
		log.Fatalf("Error while parsing driver config: %v", err)
	}
	return driverConfig
}
