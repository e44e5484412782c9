package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort       string
	MetricsPort       string
	StoreAPIPort      string
	Environment       string
	JWTSecret         string
	StoreConfig       StoreConfig
	IdentityConfig    IdentityConfig
	PostgreSQLConfig  PostgreSQLConfig
	KafkaConfig       KafkaConfig
	RedisConfig       RedisConfig
	SMTPConfig        SMTPConfig
	TracingConfig     TracingConfig
	CartCountInterval int
}

type StoreConfig struct {
	Host string
}

type IdentityConfig struct {
	Host   string
	APIKey string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type RedisConfig struct {
	Addr string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  os.Getenv("SERVICE_PORT"),
		MetricsPort:  os.Getenv("METRICS_PORT"),
		StoreAPIPort: os.Getenv("STORE_API_PORT"),
		Environment:  os.Getenv("ENVIRONMENT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		StoreConfig: StoreConfig{
			Host: os.Getenv("STORE_HOST"),
		},
		IdentityConfig: IdentityConfig{
			Host:   os.Getenv("IDENTITY_HOST"),
			APIKey: os.Getenv("IDENTITY_API_KEY"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: getenvInt("BROKER_PARTITION", 0),
		},
		RedisConfig: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		CartCountInterval: getenvInt("CART_COUNT_INTERVAL_SECONDS", 10),
	}

	return &conf
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
