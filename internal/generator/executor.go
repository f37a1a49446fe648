package generator

import (
	"context"
	"fmt"

	"github.com/simonhull/firebird-suite/repogen/internal/output"
)

// DryRunPrefix marks lines that describe a write a dry run skipped.
const DryRunPrefix = "[DRY RUN] "

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun  bool
	Force   bool
	Printer *output.Printer // Where each operation is reported (defaults to stdout)
}

// Execute validates every operation before the first one runs, so a
// conflict anywhere leaves the disk untouched. Each executed operation is
// reported as a success line; a dry run reports them without executing.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	p := opts.Printer
	if p == nil {
		p = output.New(nil)
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if opts.DryRun {
			p.Success(DryRunPrefix + op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("%s: %w", op.Description(), err)
		}
		p.Success(op.Description())
	}

	return nil
}
