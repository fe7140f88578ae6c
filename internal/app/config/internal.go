package config

type (
	InternalConfig struct {
		App      App              `mapstructure:"app"`
		JWT      JWT              `mapstructure:"jwt"`
		Minio    MinioInternal    `mapstructure:"minio"`
		RabbitMQ RabbitMQInternal `mapstructure:"rabbitmq"`
	}

	App struct {
		Env                         string   `mapstructure:"env"`
		Port                        string   `mapstructure:"port"`
		Version                     string   `mapstructure:"version"`
		Timezone                    string   `mapstructure:"timezone"`
		EndpointPrefix              string   `mapstructure:"endpoint_prefix"`
		CORSAllowedOrigins          []string `mapstructure:"cors_allowed_origins"`
		MaxRequests                 int      `mapstructure:"max_requests"`
		ShutdownTimeout             int      `mapstructure:"shutdown_timeout"`
		RequestTimeoutInSeconds     int      `mapstructure:"request_timeout_in_seconds"`
		LoginMaxAttempts            int      `mapstructure:"login_max_attempts"`
		LoginWindowInSeconds        int      `mapstructure:"login_window_in_seconds"`
		AppointmentLockInSeconds    int      `mapstructure:"appointment_lock_in_seconds"`
		EventPublishTimeoutInSecond int      `mapstructure:"event_publish_timeout_in_second"`
	}

	JWT struct {
		Secret        string `mapstructure:"secret"`
		ExpiryInHours int    `mapstructure:"expiry_in_hours"`
	}

	MinioInternal struct {
		BucketName           string `mapstructure:"bucket_name"`
		PublicBaseURL        string `mapstructure:"public_base_url"`
		ProfilePictureFolder string `mapstructure:"profile_picture_folder"`
	}

	RabbitMQInternal struct {
		EventExchange     string `mapstructure:"event_exchange"`
		NotificationQueue string `mapstructure:"notification_queue"`
	}
)

func (a App) IsProduction() bool {
	return a.Env == "production"
}
