package main

import (
	"fmt"

	"github.com/fwojciec/navdoc"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	nav, err := deps.Source.Navigation(deps.Ctx, c.Config.SiteURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdoc.ErrorMessage(err))
		return err
	}

	paths := navdoc.ExtractPages(nav)

	// Preview mode: list paths without downloading
	if c.Preview {
		for _, p := range paths {
			fmt.Fprintln(deps.Stdout, p)
		}
		return nil
	}

	return c.runExport(deps, paths)
}

func (c *ExportCmd) runExport(deps *Dependencies, paths []string) error {
	fmt.Fprintf(deps.Stdout, "Extracting %s markdown...\n", c.Config.SiteURL)

	progress := func(p navdoc.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stdout, "\n⚠️  %v\n", p.Error)
		}
		fmt.Fprintf(deps.Stdout, "\r%s", navdoc.FormatProgressBar(p.Completed, p.Total, navdoc.DefaultProgressWidth))
	}

	pages, err := deps.Fetcher.FetchAll(deps.Ctx, c.Config.SiteURL, paths, progress)
	if err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "\nerror fetching: %v\n", err)
		return err
	}

	for _, page := range pages {
		if err := deps.Store.Save(deps.Ctx, page); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "\nerror saving %s: %v\n", page.Path, err)
			return err
		}
	}

	// Commit even when no pages succeeded so the output always reflects this run
	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "\nerror writing %s: %v\n", c.Config.OutputPath, err)
		return err
	}

	summary := navdoc.Summary{
		Succeeded: len(pages),
		Total:     len(paths),
		Path:      c.Config.OutputPath,
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", summary)

	return nil
}
