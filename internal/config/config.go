package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// ErrMissingToken is returned when SuperJob is selected without an app token
var ErrMissingToken = errors.New("SUPERJOB_TOKEN is required")

// DefaultTerms are searched when neither the flags nor the config name any
var DefaultTerms = []string{"Python", "C++", "Ruby", "Delphi", "1С"}

// Config holds all configuration for a run
type Config struct {
	HeadHunter HeadHunterConfig `env:", prefix=HH_"`
	SuperJob   SuperJobConfig   `env:", prefix=SJ_"`

	// SuperJob app key, sent as X-Api-App-Id
	SuperJobToken string `env:"SUPERJOB_TOKEN"`

	// Shared by both sources
	PerPage     int           `env:"VACANCIES_PER_PAGE, default=100"`
	Timeout     time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
	RetryCount  int           `env:"RETRY_COUNT, default=0"`
	ProxyURL    string        `env:"PROXY_URL"`
	UserAgent   string        `env:"USER_AGENT, default=vacancysleuth/1.0 (+https://github.com/fr4nk3nst1ner/vacancysleuth)"`
	SearchTerms []string      `env:"SEARCH_TERMS"`
}

// HeadHunterConfig holds api.hh.ru query settings
type HeadHunterConfig struct {
	URL      string `env:"API_URL, default=https://api.hh.ru/vacancies" yaml:"url"`
	RoleID   int    `env:"ROLE_ID, default=96" yaml:"role_id"`
	AreaID   int    `env:"AREA_ID, default=1" yaml:"area_id"`
	MinFound int    `env:"MIN_FOUND, default=100" yaml:"min_found"`
	Title    string `env:"TITLE, default=HeadHunter Moscow" yaml:"title"`
}

// SuperJobConfig holds api.superjob.ru query settings
type SuperJobConfig struct {
	URL         string `env:"API_URL, default=https://api.superjob.ru/2.0/vacancies/" yaml:"url"`
	CatalogueID int    `env:"CATALOGUE_ID, default=48" yaml:"catalogue_id"`
	TownID      int    `env:"TOWN_ID, default=4" yaml:"town_id"`
	Title       string `env:"TITLE, default=SuperJob Moscow" yaml:"title"`
}

// FileConfig is the optional YAML file passed with -config
type FileConfig struct {
	Terms      []string         `yaml:"terms"`
	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`
}

// Load reads envFile (if present) into the process environment and then
// builds a Config from environment variables with defaults.
func Load(ctx context.Context, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if len(cfg.SearchTerms) == 0 {
		cfg.SearchTerms = append([]string(nil), DefaultTerms...)
	}
	return &cfg, nil
}

// LoadFile reads a YAML terms file
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overrides c with the non-zero values from the file
func (c *Config) Apply(fc *FileConfig) {
	if fc == nil {
		return
	}
	if len(fc.Terms) > 0 {
		c.SearchTerms = fc.Terms
	}

	hh := fc.HeadHunter
	if hh.URL != "" {
		c.HeadHunter.URL = hh.URL
	}
	if hh.RoleID != 0 {
		c.HeadHunter.RoleID = hh.RoleID
	}
	if hh.AreaID != 0 {
		c.HeadHunter.AreaID = hh.AreaID
	}
	if hh.MinFound != 0 {
		c.HeadHunter.MinFound = hh.MinFound
	}
	if hh.Title != "" {
		c.HeadHunter.Title = hh.Title
	}

	sj := fc.SuperJob
	if sj.URL != "" {
		c.SuperJob.URL = sj.URL
	}
	if sj.CatalogueID != 0 {
		c.SuperJob.CatalogueID = sj.CatalogueID
	}
	if sj.TownID != 0 {
		c.SuperJob.TownID = sj.TownID
	}
	if sj.Title != "" {
		c.SuperJob.Title = sj.Title
	}
}

// Validate checks the settings needed by the selected sources
func (c *Config) Validate(needSuperJob bool) error {
	if c.PerPage <= 0 {
		return fmt.Errorf("VACANCIES_PER_PAGE must be positive, got %d", c.PerPage)
	}
	if len(c.SearchTerms) == 0 {
		return errors.New("no search terms configured")
	}
	if needSuperJob && c.SuperJobToken == "" {
		return ErrMissingToken
	}
	return nil
}
