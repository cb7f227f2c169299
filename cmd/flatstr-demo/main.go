package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := applyEnv(DefaultConfig(), os.Getenv)

	log.SetOutput(io.Discard)
	if os.Getenv("FLATSTR_DEBUG") != "" {
		f, err := tea.LogToFile("flatstr-debug.log", "flatstr")
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
	}

	p := tea.NewProgram(newModel(cfg))
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
