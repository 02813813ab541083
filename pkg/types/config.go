// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for API requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "arxiv-tools/0.1"). The arXiv API terms of use ask clients
	// to identify themselves, ideally with a contact address.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the arXiv API client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on rate-limit responses
	// (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
