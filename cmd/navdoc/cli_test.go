package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/navdoc"
	main "github.com/fwojciec/navdoc/cmd/navdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: CLI Help and Validation
//
// Every setting has a default matching the stock export, so flags are only
// needed to point the tool somewhere else. Bad values fail before any
// request is made.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with --help flag
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "navdoc")
	assert.Contains(t, stdout.String(), "--site")
	assert.Contains(t, stdout.String(), "--proxy")
}

func TestCLI_RejectsUnknownFlags(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--concurrency", "4"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestCLI_RejectsInvalidSite(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--site", "docs.example.com"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, navdoc.EINVALID, navdoc.ErrorCode(err))
}

func TestCLI_RejectsInvalidProxy(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--proxy", "not a url"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, navdoc.EINVALID, navdoc.ErrorCode(err))
}

func TestCLI_RejectsNegativeRate(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--rate=-1"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, navdoc.EINVALID, navdoc.ErrorCode(err))
}

func TestCLI_Config(t *testing.T) {
	t.Parallel()

	t.Run("defaults match the stock export", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{
			Site:       navdoc.DefaultSiteURL,
			Output:     navdoc.DefaultOutputPath,
			RetryDelay: navdoc.DefaultRetryDelay,
		}

		assert.Equal(t, navdoc.DefaultConfig(), cli.Config())
	})

	t.Run("copies every flag", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{
			Site:  "http://localhost:3000/",
			Proxy: "http://proxy:8080",
			Rate:  2,
		}

		cfg := cli.Config()

		assert.Equal(t, "http://localhost:3000/", cfg.SiteURL)
		assert.Equal(t, "http://proxy:8080", cfg.ProxyURL)
		assert.InDelta(t, 2.0, cfg.RequestsPerSecond, 0.0001)
	})
}
