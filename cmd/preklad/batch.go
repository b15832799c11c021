package main

import (
	"fmt"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/translate"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", preklad.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to process.")
		return nil
	}

	batch := &translate.Batch{
		Pipeline:    deps.Pipeline,
		Runs:        deps.Runs,
		Limiter:     translate.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	progress := func(event translate.ProgressEvent) {
		switch event.Type {
		case translate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d URLs\n", event.Total)
		case translate.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ok    %s\n", event.Completed, event.Total, event.URL)
		case translate.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] fail  %s: %s\n", event.Completed, event.Total, event.URL, preklad.ErrorMessage(event.Error))
		case translate.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip  %s (duplicate)\n", event.Completed, event.Total, event.URL)
		}
	}

	report, err := batch.Process(deps.Ctx, urls, c.Output, progress)
	if report != nil {
		fmt.Fprintln(deps.Stdout, report.Summary())
		if c.Report != "" {
			if writeErr := report.WriteFile(c.Report); writeErr != nil {
				fmt.Fprintf(deps.Stderr, "warning: %s\n", preklad.ErrorMessage(writeErr))
			}
		}
	}
	return err
}
