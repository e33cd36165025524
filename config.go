package session

import (
	"time"

	"github.com/caarlos0/env/v11"
	goerrors "github.com/goliatone/go-errors"
)

// EnvConfig is the environment-driven Config implementation.
type EnvConfig struct {
	IdentityBaseURL string        `env:"SESSION_IDENTITY_URL" envDefault:"http://localhost:3000/api"`
	RequestTimeout  time.Duration `env:"SESSION_REQUEST_TIMEOUT" envDefault:"10s"`
	LoginPath       string        `env:"SESSION_LOGIN_PATH" envDefault:"/login"`
	TokenFilePath   string        `env:"SESSION_TOKEN_FILE" envDefault:".session/token"`
	RedisAddr       string        `env:"SESSION_REDIS_ADDR"`
	RedisKey        string        `env:"SESSION_REDIS_KEY" envDefault:"edukit:session:token"`
}

// LoadEnvConfig parses configuration from the process environment.
func LoadEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "parse session environment")
	}
	return cfg, nil
}

func (c *EnvConfig) GetIdentityBaseURL() string {
	return c.IdentityBaseURL
}

func (c *EnvConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func (c *EnvConfig) GetLoginPath() string {
	if c.LoginPath == "" {
		return DefaultLoginPath
	}
	return c.LoginPath
}

func (c *EnvConfig) GetTokenFilePath() string {
	return c.TokenFilePath
}

func (c *EnvConfig) GetRedisAddr() string {
	return c.RedisAddr
}

func (c *EnvConfig) GetRedisKey() string {
	return c.RedisKey
}

var _ Config = (*EnvConfig)(nil)
