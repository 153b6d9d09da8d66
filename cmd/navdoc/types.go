package main

import (
	"context"
	"io"

	"github.com/fwojciec/navdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source  navdoc.NavigationSource
	Fetcher navdoc.PageFetcher
	Store   navdoc.PageStore
}

// ExportCmd handles the export operation.
type ExportCmd struct {
	Config  navdoc.Config
	Preview bool
}
