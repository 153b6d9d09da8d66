package main

import (
	"time"

	"github.com/fwojciec/navdoc"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site       string        `default:"https://docs.agno.com/" env:"NAVDOC_SITE" help:"Documentation site root"`
	Output     string        `short:"o" default:"./agno_llms_full.txt" env:"NAVDOC_OUTPUT" help:"Destination file, overwritten on each run"`
	Proxy      string        `env:"NAVDOC_PROXY" help:"Proxy URL applied to every request"`
	RetryDelay time.Duration `default:"30s" help:"Pause before retrying a page that did not return 200"`
	Timeout    time.Duration `short:"t" default:"0s" help:"Per-request timeout (0 disables)"`
	Rate       float64       `default:"0" help:"Maximum page requests per second (0 disables pacing)"`
	Preview    bool          `short:"p" help:"List page paths without downloading them"`
	Debug      bool          `help:"Log requests to stderr"`
}

// Config converts parsed flags into an export configuration.
func (c *CLI) Config() navdoc.Config {
	return navdoc.Config{
		SiteURL:           c.Site,
		OutputPath:        c.Output,
		ProxyURL:          c.Proxy,
		RetryDelay:        c.RetryDelay,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.Rate,
	}
}
