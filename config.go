package navdoc

import (
	"net/url"
	"time"
)

// Defaults for an export run.
const (
	DefaultSiteURL    = "https://docs.agno.com/"
	DefaultOutputPath = "./agno_llms_full.txt"
	DefaultRetryDelay = 30 * time.Second
)

// Config holds the settings of one export run.
type Config struct {
	SiteURL    string
	OutputPath string

	// ProxyURL, when set, routes every request through the proxy.
	ProxyURL string

	// RetryDelay is the pause before the single retry of a page.
	RetryDelay time.Duration

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// RequestsPerSecond paces page requests. Zero disables pacing.
	RequestsPerSecond float64
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		SiteURL:    DefaultSiteURL,
		OutputPath: DefaultOutputPath,
		RetryDelay: DefaultRetryDelay,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.SiteURL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	if !isAbsoluteHTTP(c.SiteURL) {
		return Errorf(EINVALID, "site URL must be an absolute http(s) URL: %q", c.SiteURL)
	}
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.ProxyURL != "" {
		u, err := url.Parse(c.ProxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Errorf(EINVALID, "invalid proxy URL: %q", c.ProxyURL)
		}
	}
	if c.RetryDelay < 0 {
		return Errorf(EINVALID, "retry delay must not be negative")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "rate must not be negative")
	}
	return nil
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
