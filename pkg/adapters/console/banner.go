package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the preview header, shaded blue to red on color terminals.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{"  ___ _   ___    ___      _   ", "#3498db"},
		{" | __/_\\ / _ \\  | _ ) ___| |_ ", "#5b7fd6"},
		{" | _/ _ \\ (_) | | _ \\/ _ \\  _|", "#9b59b6"},
		{" |_/_/ \\_\\__\\_\\ |___/\\___/\\__|", "#e74c3c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, "  Enter an option number, 0 to go back, q to quit.")
	fmt.Fprintln(w)
}
