package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/cmd/console/ui"
)

func main() {
	addr := flag.String("addr", "http://127.0.0.1:4000", "Taskboard API base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*addr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
