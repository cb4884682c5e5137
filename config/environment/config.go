package environment

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment at startup.
// It is built once in main and passed by value to the components that need it.
type Config struct {
	Port           int           `env:"PORT,default=3000" validate:"min=1,max=65535"`
	OpenAIKey      string        `env:"OPENAI_API_KEY"` // not checked here, a missing key fails at the provider
	OpenAIBaseURL  string        `env:"OPENAI_BASE_URL,default=https://api.openai.com/v1" validate:"required,url"`
	OpenAITimeout  time.Duration `env:"OPENAI_TIMEOUT,default=0s" validate:"gte=0"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES,default=20971520" validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	GinMode        string        `env:"GIN_MODE,default=release" validate:"oneof=debug release test"`
}

var validate = validator.New()

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are never overridden.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
