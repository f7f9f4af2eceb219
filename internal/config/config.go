package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CollectionConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	CollectionDB `yaml:"collection_db"`
	LogConfig    `yaml:"log_config"`
	Cashfree     `yaml:"cashfree"`
	KafkaService `yaml:"kafka-service"`
	Reconciler   `yaml:"reconciler"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type CollectionDB struct {
	Dsn            string `yaml:"dsn" env:"COLLECTION_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Cashfree struct {
	ClientID      string `yaml:"client_id" env:"CASHFREE_CLIENT_ID"`
	SecretKey     string `yaml:"secret_key" env:"CASHFREE_SECRET_KEY"`
	Environment   string `yaml:"environment" env:"CASHFREE_ENVIRONMENT" env-default:"SANDBOX"`
	APIVersion    string `yaml:"api_version" env-default:"2023-08-01"`
	ReturnBaseURL string `yaml:"return_base_url" env:"API_BASE_URL" env-default:"http://localhost:3000"`
	NotifyBaseURL string `yaml:"notify_base_url" env:"WEBHOOK_URL"`
	WebhookSecret string `yaml:"webhook_secret" env:"CASHFREE_WEBHOOK_SECRET"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"donation-events"`
}

type Reconciler struct {
	PollInterval   time.Duration `yaml:"poll_interval" env-default:"30s"`
	PendingTimeout time.Duration `yaml:"pending_timeout" env-default:"15m"`
	SweepInterval  time.Duration `yaml:"sweep_interval" env-default:"10m"`
	BatchLimit     int           `yaml:"batch_limit" env-default:"100"`
}

func MustLoad() *CollectionConfig {

	// Processing env config variable and file
	configPath := os.Getenv("COLLECTION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COLLECTION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CollectionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
