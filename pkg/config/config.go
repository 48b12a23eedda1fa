package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	DynamoDB DynamoDB
	Tables   Tables
	Billing  Billing
	Stripe   Stripe
	Kafka    Kafka
	Redis    Redis
	Mailer   Mailer
	MinIO    MinIO
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// DynamoDB holds connection settings. Local DynamoDB does not validate
// credentials, but the AWS SDK requires them.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	Users            string `env:"USERS_TABLE" envDefault:"users"`
	Horses           string `env:"HORSES_TABLE" envDefault:"horses"`
	HorseOwners      string `env:"HORSE_OWNERS_TABLE" envDefault:"horse_owners"`
	ServiceShows     string `env:"SERVICE_SHOWS_TABLE" envDefault:"service_shows"`
	ServiceRequests  string `env:"SERVICE_REQUESTS_TABLE" envDefault:"service_requests"`
	Invoices         string `env:"INVOICES_TABLE" envDefault:"invoices"`
	Payments         string `env:"PAYMENTS_TABLE" envDefault:"payments"`
	PaymentApprovers string `env:"PAYMENT_APPROVERS_TABLE" envDefault:"payment_approvers"`
	Notifications    string `env:"NOTIFICATIONS_TABLE" envDefault:"notifications"`
}

type Billing struct {
	Currency              string          `env:"BILLING_CURRENCY" envDefault:"usd"`
	ApplicationFeePercent decimal.Decimal `env:"APPLICATION_FEE_PERCENT" envDefault:"5"`
	SettlementLockTTL     time.Duration   `env:"SETTLEMENT_LOCK_TTL" envDefault:"2m"`
}

type Stripe struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
	MockMode  bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

type Kafka struct {
	Brokers   []string `env:"KAFKA_BROKERS"`
	PushTopic string   `env:"KAFKA_PUSH_TOPIC" envDefault:"push-notifications"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM" envDefault:"billing@localhost"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Billing"`
}

type MinIO struct {
	Endpoint  string        `env:"MINIO_ENDPOINT"`
	AccessKey string        `env:"MINIO_ACCESS_KEY"`
	SecretKey string        `env:"MINIO_SECRET_KEY"`
	Bucket    string        `env:"MINIO_EXPORTS_BUCKET" envDefault:"invoice-exports"`
	UseSSL    bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	LinkTTL   time.Duration `env:"MINIO_LINK_TTL" envDefault:"168h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
