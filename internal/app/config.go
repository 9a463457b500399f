package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"minicrypt/internal/domain"
)

// Config holds runtime options. Every field can be set from the environment;
// CLI flags override what is loaded here.
type Config struct {
	DHBase       domain.Integer `env:"MINICRYPT_DH_BASE" env-default:"5" validate:"gt=0"`
	DHModulus    domain.Integer `env:"MINICRYPT_DH_MODULUS" env-default:"104729" validate:"gt=1"`
	AlicePrivate domain.Integer `env:"MINICRYPT_ALICE_PRIVATE" env-default:"1234" validate:"gt=0"`
	BobPrivate   domain.Integer `env:"MINICRYPT_BOB_PRIVATE" env-default:"5678" validate:"gt=0"`
	MinPrime     domain.Integer `env:"MINICRYPT_MIN_PRIME" env-default:"50" validate:"gte=1"`
	KDF          string         `env:"MINICRYPT_KDF" env-default:"text" validate:"oneof=text hkdf"`
	LogLevel     string         `env:"MINICRYPT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
}

// DHParams returns the configured Diffie-Hellman parameters.
func (c Config) DHParams() domain.DHParams {
	return domain.DHParams{Base: c.DHBase, Modulus: c.DHModulus}
}

// LoadConfig reads Config from the environment. When path is non-empty the
// .env file at path is loaded first; variables already set win.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
