// Package config loads runtime configuration from environment variables and
// an optional config file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the summary fetcher.
type Config struct {
	// Base URLs for the data source endpoints (configurable for testing)
	QuoteBaseURL  string `mapstructure:"quote_base_url"`
	SearchBaseURL string `mapstructure:"search_base_url"`

	// Transport
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ProxyURL       string        `mapstructure:"proxy_url"`

	// Batch behavior
	UseFuzzySearch bool `mapstructure:"use_fuzzy_search"`
	PageNotFoundOK bool `mapstructure:"page_not_found_ok"`
	WithThreads    bool `mapstructure:"with_threads"`
	ThreadCount    int  `mapstructure:"thread_count"`
	ProgressBar    bool `mapstructure:"progress_bar"`

	// Symbols to fetch when none are given on the command line
	Symbols []string `mapstructure:"symbols"`
}

// Load reads configuration from environment variables and an optional
// config.yaml. Environment variables take precedence over config file
// values.
//
// Recognized environment variables:
//   - QUOTE_BASE_URL, SEARCH_BASE_URL
//   - REQUEST_TIMEOUT, PROXY_URL
//   - USE_FUZZY_SEARCH, PAGE_NOT_FOUND_OK, WITH_THREADS, THREAD_COUNT
//   - PROGRESS_BAR
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("quote_base_url", "https://finance.yahoo.com/quote")
	v.SetDefault("search_base_url", "https://query1.finance.yahoo.com/v1/finance/search")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("use_fuzzy_search", true)
	v.SetDefault("page_not_found_ok", true)
	v.SetDefault("with_threads", false)
	v.SetDefault("thread_count", 5)
	v.SetDefault("progress_bar", true)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.summaryfetcher")
	_ = v.ReadInConfig()

	v.BindEnv("quote_base_url", "QUOTE_BASE_URL")
	v.BindEnv("search_base_url", "SEARCH_BASE_URL")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("proxy_url", "PROXY_URL")
	v.BindEnv("use_fuzzy_search", "USE_FUZZY_SEARCH")
	v.BindEnv("page_not_found_ok", "PAGE_NOT_FOUND_OK")
	v.BindEnv("with_threads", "WITH_THREADS")
	v.BindEnv("thread_count", "THREAD_COUNT")
	v.BindEnv("progress_bar", "PROGRESS_BAR")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.ThreadCount < 1 {
		return nil, fmt.Errorf("thread_count must be at least 1, got %d", config.ThreadCount)
	}
	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request_timeout must be positive, got %s", config.RequestTimeout)
	}

	return config, nil
}
