package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dynurl banner with the release version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	title := out.String("  dynurl").Bold().Foreground(out.Color("#818cf8"))
	sub := out.String(" {placeholder} rewrite engine").Foreground(out.Color("#c084fc"))
	ver := out.String(" v" + version).Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s%s\n", title, sub, ver)
	fmt.Fprintln(w)
}
