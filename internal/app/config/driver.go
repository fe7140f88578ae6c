package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}

	MongoDB struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DbName   string `mapstructure:"db_name"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_file_name"`
		OutputErrorFileName string `mapstructure:"output_error_file_name"`
	}

	RabbitMQ struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}

	Minio struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseSSL   bool   `mapstructure:"use_ssl"`
	}
)
