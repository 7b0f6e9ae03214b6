package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はクライアント全体の設定を表現します。
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	Session SessionConfig `yaml:"session"`
}

// APIConfig はバックエンド API への接続に関する設定です。
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	RequestTimeout    time.Duration `yaml:"-"`
	RequestTimeoutRaw string        `yaml:"request_timeout"`
}

// SearchConfig は社員検索の挙動に関する設定です。
type SearchConfig struct {
	DebounceInterval    time.Duration `yaml:"-"`
	DebounceIntervalRaw string        `yaml:"debounce_interval"`
}

// SessionConfig はセッション永続化に関する設定です。
type SessionConfig struct {
	StateFile string `yaml:"state_file"`
}

const (
	defaultRequestTimeout   = 15 * time.Second
	defaultDebounceInterval = 300 * time.Millisecond
)

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.API.validateAndNormalize(); err != nil {
		return err
	}

	interval, err := parseDurationAllowEmpty(c.Search.DebounceIntervalRaw)
	if err != nil {
		return fmt.Errorf("config: search.debounce_interval: %w", err)
	}
	if interval == 0 {
		interval = defaultDebounceInterval
	}
	c.Search.DebounceInterval = interval

	if c.Session.StateFile == "" {
		return fmt.Errorf("config: session.state_file must be set")
	}

	return nil
}

func (a *APIConfig) validateAndNormalize() error {
	if a.BaseURL == "" {
		return fmt.Errorf("config: api.base_url must be set")
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")

	timeout, err := parseDurationAllowEmpty(a.RequestTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: api.request_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}
	a.RequestTimeout = timeout

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
