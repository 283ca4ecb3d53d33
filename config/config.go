package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongoDB = "mongodb"
	StoreDriverMemory  = "memory"
)

type Config struct {
	ServiceName     string
	ServicePort     string
	MetricsPort     string
	Environment     string
	StoreDriver     string
	SeedOnStartup   bool
	CORSOrigins     []string
	LogConfig       LogConfig
	MongoDBConfig   MongoDBConfig
	KafkaConfig     KafkaConfig
	TracingConfig   TracingConfig
	RecaptchaConfig RecaptchaConfig
	SMTPConfig      SMTPConfig
	AnalyticsConfig AnalyticsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
	ConsumerGroup string
}

// Enabled reports whether a broker has been configured. Without one, domain
// events are dropped and the consumer is not started.
func (k KafkaConfig) Enabled() bool {
	return k.BrokerAddress != "" && k.BrokerTopic != ""
}

type TracingConfig struct {
	CollectorHost string
}

type RecaptchaConfig struct {
	Secret    string
	VerifyURL string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Sender      string
	NotifyEmail string
}

type AnalyticsConfig struct {
	StatsRefreshInterval time.Duration
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServiceName:   getEnv("SERVICE_NAME", "catalog-service"),
		ServicePort:   getEnv("SERVICE_PORT", "8001"),
		MetricsPort:   getEnv("METRICS_PORT", "9001"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreDriverMongoDB),
		SeedOnStartup: getEnvBool("SEED_ON_STARTUP", true),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		LogConfig: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "matifood"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
			ConsumerGroup: getEnv("BROKER_CONSUMER_GROUP", "catalog-service"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		RecaptchaConfig: RecaptchaConfig{
			Secret:    os.Getenv("RECAPTCHA_SECRET"),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		},
		SMTPConfig: SMTPConfig{
			Host:        os.Getenv("SMTP_HOST"),
			Port:        getEnvInt("SMTP_PORT", 587),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			Sender:      os.Getenv("SMTP_SENDER"),
			NotifyEmail: os.Getenv("CONTACT_NOTIFY_EMAIL"),
		},
		AnalyticsConfig: AnalyticsConfig{
			StatsRefreshInterval: getEnvDuration("STATS_REFRESH_INTERVAL", time.Minute),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
