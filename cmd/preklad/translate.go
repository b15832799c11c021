package main

import (
	"fmt"

	"github.com/dkubicek/preklad"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	res, err := deps.Pipeline.Run(deps.Ctx, c.URL, c.Output)

	run := &preklad.Run{URL: c.URL}
	if err != nil {
		run.Status = preklad.RunStatusFailed
		run.Error = preklad.ErrorMessage(err)
	} else {
		run.Status = preklad.RunStatusOK
		run.Title = res.Meta.Title
		run.OutputDir = res.OutputDir
		run.ContentHash = res.ContentHash
		run.Warnings = len(res.Warnings)
	}
	if recErr := deps.Runs.CreateRun(deps.Ctx, run); recErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record run: %s\n", preklad.ErrorMessage(recErr))
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", preklad.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Translated %s\n", c.URL)
	fmt.Fprintf(deps.Stdout, "  Title:  %s\n", res.Meta.Title)
	if res.Topic != "" {
		fmt.Fprintf(deps.Stdout, "  Topic:  %s\n", res.Topic)
	}
	fmt.Fprintf(deps.Stdout, "  Output: %s\n", res.OutputDir)
	fmt.Fprintf(deps.Stdout, "  Assets: %d, links rewritten: %d\n", len(res.Assets), res.RewrittenLinks)

	for _, w := range res.Warnings {
		fmt.Fprintf(deps.Stderr, "  warning: %s\n", w)
	}

	return nil
}
