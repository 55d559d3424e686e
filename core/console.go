package core

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var Version = "v0.1.0"

var Banner = `
 _  ___                    
| |/ / | ___  ___ _ __   ___ 
| ' /| |/ _ \/ _ \ '_ \ / _ \
| . \| |  __/  __/ | | |  __/
|_|\_\_|\___|\___|_| |_|\___|
`

var (
	cy   = color.New(color.FgCyan).SprintFunc()
	blue = color.New(color.FgBlue, color.Bold).SprintFunc()
	warn = color.New(color.FgHiMagenta).SprintFunc()
)

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, cy(Banner))
	fmt.Fprintln(w, blue(Version))
}

// PrintReport writes r to w with coloured header and section labels. The
// plain layout is the one produced by Report.Text.
func PrintReport(w io.Writer, r *Report) {
	for _, line := range r.Header {
		fmt.Fprintln(w, cy(line))
	}
	for _, s := range r.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, blue(s.Label+":"))
		fmt.Fprintln(w, s.joined(r.Quote))
	}
}

func PrintWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warn("[!] "+fmt.Sprintf(format, args...)))
}
