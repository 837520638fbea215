package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"        default:"5000"`
		Host     string `envconfig:"HOST"        default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name      string `envconfig:"APP_NAME"   default:"studio"`
		Timezone  string `envconfig:"TIMEZONE"`
		SecretKey string `envconfig:"SECRET_KEY" default:"royal-secret-key"`
		WhatsApp  struct {
			AdminNumber string `envconfig:"ADMIN_NUMBER" default:"918149003738"`
			CountryCode string `envconfig:"COUNTRY_CODE" default:"91"`
		} `envconfig:"WHATSAPP"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Content-Type,Accept"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"          default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"30"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		LoginThrottle struct {
			RPS        float64 `envconfig:"RPS"         default:"0.2"`
			Burst      int     `envconfig:"BURST"       default:"5"`
			MaxClients int     `envconfig:"MAX_CLIENTS" default:"10000"`
		} `envconfig:"LOGIN_THROTTLE"`
		// TrustProxy takes the client address from X-Forwarded-For and X-Real-IP. Enable
		// only behind a proxy that overwrites those headers.
		TrustProxy bool `envconfig:"TRUST_PROXY"`
	} `envconfig:"APP"`

	Admin struct {
		Seed struct {
			Username string `envconfig:"USERNAME" default:"admin"`
			Password string `envconfig:"PASSWORD" default:"admin123"`
		} `envconfig:"SEED"`
	} `envconfig:"ADMIN"`

	Session struct {
		CookieName string `envconfig:"COOKIE_NAME" default:"studio_session"`
		ExpireMin  int    `envconfig:"EXPIRE_MIN"  default:"720"`
		SecureOnly bool   `envconfig:"SECURE_ONLY"`
	} `envconfig:"SESSION"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Driver string `envconfig:"DRIVER" default:"postgres"`
		SQLite struct {
			Path string `envconfig:"PATH" default:"booking.db"`
		} `envconfig:"SQLITE"`
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"    default:"true"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		Topic         string   `envconfig:"TOPIC"          default:"booking.created"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"studio-notifier"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint          string `envconfig:"API_ENDPOINT"`
			PublicDomain         string `envconfig:"PUBLIC_DOMAIN"`
			BucketName           string `envconfig:"BUCKET_NAME"`
			AccessKeyID          string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey      string `envconfig:"SECRET_ACCESS_KEY"`
			Region               string `envconfig:"REGION"                 default:"auto"`
			UploadTimeoutSeconds int    `envconfig:"UPLOAD_TIMEOUT_SECONDS" default:"30"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
