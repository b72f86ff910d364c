// gridscope is a terminal viewer for an infinite, zoomable, rotatable
// Cartesian reference grid.
//
// Run: GOWORK=off go run ./cmd/gridscope/
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridscope/internal/scopeui"
)

func main() {
	p := tea.NewProgram(scopeui.NewModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
