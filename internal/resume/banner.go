package resume

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const bannerArt = `
 ____  _____ ____  _   _ __  __ _____
|  _ \| ____/ ___|| | | |  \/  | ____|
| |_) |  _| \___ \| | | | |\/| |  _|
|  _ <| |___ ___) | |_| | |  | | |___
|_| \_\_____|____/ \___/|_|  |_|_____|
`

// Banner is the decorative text printed to the browser console when the
// page loads.
func (r *Resume) Banner() string {
	var b strings.Builder
	b.WriteString(strings.TrimPrefix(bannerArt, "\n"))
	fmt.Fprintf(&b, "\n  %s", r.Name)
	if r.Headline != "" {
		fmt.Fprintf(&b, " · %s", r.Headline)
	}
	if r.Email != "" {
		fmt.Fprintf(&b, "\n  %s", r.Email)
	}
	b.WriteString("\n")
	return b.String()
}

// PrintBanner writes the banner to a terminal, coloured when w supports it.
func (r *Resume) PrintBanner(w io.Writer) {
	c := color.New(color.FgCyan, color.Bold)
	c.Fprint(w, r.Banner())
}
