// Package countdown prints an operator-facing delay before the hive is
// unloaded, giving a last chance to abort with Ctrl-C.
package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Counter writes a countdown to Out. Interval controls tick granularity
// and defaults to one second; tests shorten it.
type Counter struct {
	Out      io.Writer
	Interval time.Duration
}

// Wait blocks for d, printing the remaining ticks, and returns early with
// the context error if the operator cancels.
func (c *Counter) Wait(ctx context.Context, d time.Duration) error {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	remaining := int((d + interval - 1) / interval)
	if remaining <= 0 {
		return nil
	}

	warn := color.New(color.FgYellow)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	warn.Fprintf(c.Out, "Unloading hive in %d... press Ctrl-C to abort\n", remaining)
	for remaining > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			remaining--
			if remaining > 0 {
				warn.Fprintf(c.Out, "Unloading hive in %d...\n", remaining)
			}
		}
	}
	fmt.Fprintln(c.Out)
	return nil
}
