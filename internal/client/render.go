package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes the view of state as a table, filtered by term. Non-loaded
// states render as a single status line.
func Render[T any, Req any](w io.Writer, resource Resource[T, Req], state State[T], term string) error {
	switch state.Status {
	case Idle, Loading:
		_, err := fmt.Fprintf(w, "Loading %s...\n", resource.Label)
		return err
	case LoadError:
		_, err := fmt.Fprintf(w, "✗ Failed to load %s: %v\n", resource.Label, state.Err)
		return err
	}

	records := Filter(state.Records, term, resource.Row)
	if len(records) == 0 {
		_, err := fmt.Fprintf(w, "No %s found\n", resource.Label)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(resource.Columns, "\t"))
	for _, record := range records {
		fmt.Fprintln(tw, strings.Join(resource.Row(record), "\t"))
	}
	return tw.Flush()
}
