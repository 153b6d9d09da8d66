package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/navdoc"
	"github.com/fwojciec/navdoc/mock"
	navslog "github.com/fwojciec/navdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNavigationSource_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("logs page count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.NavigationSource{
			NavigationFn: func(_ context.Context, _ string) (navdoc.Node, error) {
				return navdoc.Mapping(navdoc.Field{Key: "pages", Value: navdoc.Strings("a", "b")}), nil
			},
		}

		src := navslog.NewLoggingNavigationSource(inner, logger)
		nav, err := src.Navigation(context.Background(), "https://docs.example.com/")

		require.NoError(t, err)
		assert.Len(t, navdoc.ExtractPages(nav), 2)
		output := buf.String()
		assert.Contains(t, output, "navigation")
		assert.Contains(t, output, "url=https://docs.example.com/")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.NavigationSource{
			NavigationFn: func(_ context.Context, _ string) (navdoc.Node, error) {
				return navdoc.Node{}, errors.New("connection failed")
			},
		}

		src := navslog.NewLoggingNavigationSource(inner, logger)
		_, err := src.Navigation(context.Background(), "https://docs.example.com/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "pages=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
