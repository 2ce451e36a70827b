package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the arXiv retrieval stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the arXiv query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MaxResults is the default number of results per search (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// PageSize is the max_results sent with each page request (default 100).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// PageDelay is the pause between successive page requests (default 3s).
	// arXiv asks clients to wait this long between calls.
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay" mapstructure:"page_delay"`
}

// ServerConfig holds settings for the web front-end.
type ServerConfig struct {
	// Addr is the listen address (default ":5000").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// HistorySize caps the reading history kept per session (default 10).
	HistorySize int `json:"history_size" yaml:"history_size" mapstructure:"history_size"`

	// SecretsDir holds the session-key file used to sign session cookies.
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir" mapstructure:"secrets_dir"`
}

// Config groups all configuration for the CLI and server.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search" mapstructure:"search"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
}

const (
	DefaultBaseURL     = "https://export.arxiv.org/api/query"
	DefaultTimeout     = 5 * time.Second
	DefaultUserAgent   = "arxiv-explorer/0.1"
	DefaultMaxResults  = 20
	DefaultPageSize    = 100
	DefaultPageDelay   = 3 * time.Second
	DefaultAddr        = ":5000"
	DefaultHistorySize = 10
	DefaultSecretsDir  = ".secrets/"
)

// DefaultConfig returns the configuration used when no file or flag overrides it.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			BaseURL:    DefaultBaseURL,
			MaxResults: DefaultMaxResults,
			PageSize:   DefaultPageSize,
			PageDelay:  DefaultPageDelay,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			HistorySize: DefaultHistorySize,
			SecretsDir:  DefaultSecretsDir,
		},
	}
}
