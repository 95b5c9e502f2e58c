package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintResult writes the rewritten path followed by a per-token summary.
// Colour is applied only when w is a terminal that supports it.
func PrintResult(w io.Writer, res domain.Result, verbose bool) {
	out := termenv.NewOutput(w)

	path := out.String(res.Path)
	if res.Changed {
		path = path.Foreground(out.Color("#4ade80"))
	}
	fmt.Fprintln(w, path)

	if !verbose {
		return
	}
	for _, r := range res.Resolutions {
		if r.Resolved {
			mark := out.String("✓").Foreground(out.Color("#4ade80"))
			fmt.Fprintf(w, "  %s {%s} via %s\n", mark, r.Name, r.Strategy)
			continue
		}
		mark := out.String("✗").Foreground(out.Color("#fb7185"))
		if r.Err != nil {
			fmt.Fprintf(w, "  %s {%s}: %v\n", mark, r.Name, r.Err)
		} else {
			fmt.Fprintf(w, "  %s {%s}\n", mark, r.Name)
		}
	}
}
