package main

import (
	"fmt"

	"github.com/dkubicek/preklad"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", preklad.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-6s  %s", run.CreatedAt.Format("2006-01-02 15:04"), run.Status, run.URL)
		if run.Status == preklad.RunStatusFailed {
			line += "  (" + run.Error + ")"
		} else if run.Warnings > 0 {
			line += fmt.Sprintf("  (%d warnings)", run.Warnings)
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
