// Package utils contains utility functions for the monstub daemon.
package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#60F281"))

// DisplayBanner prints the monstub banner with version information
func DisplayBanner(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, bannerStyle.Render(` ░█▄█░█▀█░█▀█░█▀▀░▀█▀░█░█░█▀▄
 ░█░█░█░█░█░█░▀▀█░░█░░█░█░█▀▄
 ░▀░▀░▀▀▀░▀░▀░▀▀▀░░▀░░▀▀▀░▀▀░`))
	fmt.Fprintf(w, "\n monstub v%s - control API stand-in\n\n", version)
}
