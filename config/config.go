package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is built once at startup and treated as read-only afterwards.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://swipehome.app,https://www.swipehome.app,http://localhost:5173"`

	// Secrets may come from Parameter Store when PARAM_PREFIX is set.
	ParamPrefix string `env:"PARAM_PREFIX"`

	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIAssistantID string        `env:"OPENAI_ASSISTANT_ID"`
	RunPollInterval   time.Duration `env:"RUN_POLL_INTERVAL" envDefault:"1s"`
	RunMaxWait        time.Duration `env:"RUN_MAX_WAIT" envDefault:"2m"`

	AirtableAPIKey        string `env:"AIRTABLE_API_KEY"`
	AirtableBaseURL       string `env:"AIRTABLE_BASE_URL" envDefault:"https://api.airtable.com/v0"`
	AirtableBaseID        string `env:"AIRTABLE_BASE_ID"`
	AirtableSwipeTable    string `env:"AIRTABLE_SWIPE_TABLE"`
	AirtableListingsTable string `env:"AIRTABLE_LISTINGS_TABLE" envDefault:"Listings"`
}

// ParamGetter reads a single secret by name.
type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// Load parses the process environment. params is consulted for secrets the
// environment leaves empty, and may be nil.
func Load(ctx context.Context, params ParamGetter) (*Config, error) {
	return load(ctx, env.Options{}, params)
}

func load(ctx context.Context, opts env.Options, params ParamGetter) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.normalize()

	if params != nil && cfg.ParamPrefix != "" {
		if err := cfg.resolveSecrets(ctx, params); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.OpenAIAPIKey = strings.TrimSpace(c.OpenAIAPIKey)
	c.OpenAIAssistantID = strings.TrimSpace(c.OpenAIAssistantID)
	c.AirtableAPIKey = strings.TrimSpace(c.AirtableAPIKey)
	c.AirtableBaseID = strings.TrimSpace(c.AirtableBaseID)
	c.AirtableSwipeTable = strings.TrimSpace(c.AirtableSwipeTable)
	c.ParamPrefix = strings.TrimRight(strings.TrimSpace(c.ParamPrefix), "/")

	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins

	if c.RunPollInterval <= 0 {
		c.RunPollInterval = time.Second
	}
	if c.RunMaxWait < 0 {
		c.RunMaxWait = 0
	}
}

// resolveSecrets fills empty secrets from Parameter Store. Values already
// present in the environment win.
func (c *Config) resolveSecrets(ctx context.Context, params ParamGetter) error {
	secrets := []struct {
		name string
		dst  *string
	}{
		{"openai-api-key", &c.OpenAIAPIKey},
		{"openai-assistant-id", &c.OpenAIAssistantID},
		{"airtable-api-key", &c.AirtableAPIKey},
		{"airtable-base-id", &c.AirtableBaseID},
	}
	for _, s := range secrets {
		if *s.dst != "" {
			continue
		}
		v, err := params.GetParameter(ctx, c.ParamPrefix+"/"+s.name)
		if err != nil {
			return fmt.Errorf("config: resolve %s: %w", s.name, err)
		}
		*s.dst = strings.TrimSpace(v)
	}
	return nil
}

func (c *Config) validate() error {
	var missing []string
	required := []struct {
		key string
		val string
	}{
		{"OPENAI_API_KEY", c.OpenAIAPIKey},
		{"OPENAI_ASSISTANT_ID", c.OpenAIAssistantID},
		{"AIRTABLE_API_KEY", c.AirtableAPIKey},
		{"AIRTABLE_BASE_ID", c.AirtableBaseID},
		{"AIRTABLE_SWIPE_TABLE", c.AirtableSwipeTable},
	}
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("config: ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}
