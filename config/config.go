package config

import (
	"facttodo/shared/failure"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" validate:"gte=0"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" validate:"gte=0"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"NAME" default:"facttodo"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" validate:"required_if=Enable true"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" validate:"required_if=Enable true"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry              int    `envconfig:"MAX_RETRY" default:"3" validate:"gte=1"`
			RetryWaitTime         int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConnections    int    `envconfig:"MAX_OPEN_CONNECTIONS" default:"10" validate:"gte=1"`
			MaxIdleConnections    int    `envconfig:"MAX_IDLE_CONNECTIONS" default:"10" validate:"gte=0"`
			AcquireTimeoutSeconds int    `envconfig:"ACQUIRE_TIMEOUT_SECONDS" default:"5" validate:"gte=1"`
			InitScript            string `envconfig:"INIT_SCRIPT" default:"./db.sql" validate:"required"`
			Host                  string `envconfig:"HOST" default:"127.0.0.1" validate:"required"`
			Port                  string `envconfig:"PORT" default:"7878" validate:"required,numeric"`
			Username              string `envconfig:"USER" default:"postgres"`
			Password              string `envconfig:"PASSWORD"`
			Name                  string `envconfig:"NAME" default:"postgres" validate:"required"`
			SSLMode               string `envconfig:"SSL_MODE" default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		CatFact struct {
			BaseURL        string `envconfig:"BASE_URL" default:"https://cat-fact.herokuapp.com" validate:"required,url"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10" validate:"gte=1"`
		} `envconfig:"CAT_FACT"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initErr     error
	initialized bool
)

func Init() error {
	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			initErr = failure.ConfigError(fmt.Errorf("processing environment variables: %w", err))

			return
		}

		if initErr = Validate(&conf); initErr != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	return initErr
}

// Validate checks the value constraints envconfig cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return failure.ConfigError(fmt.Errorf("invalid configuration: %w", err))
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
