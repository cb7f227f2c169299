package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Config configures the demo model.
type Config struct {
	// Initial text. Whatever does not fit is dropped.
	Text string

	// Number of undo steps kept. default: 64
	HistoryLimit int

	Style Style
}

// Style controls rendering.
type Style struct {
	Prompt  lipgloss.Style
	Text    lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	BarFull lipgloss.Style
	BarFree lipgloss.Style
	Help    lipgloss.Style
}

func DefaultConfig() Config {
	return Config{
		Text:         "Hello, こんにちは!",
		HistoryLimit: 64,
		Style:        DefaultStyle(lipgloss.NewStyle),
	}
}

// DefaultStyle builds the default palette from newStyle, so tests can pass a
// renderer-bound constructor.
func DefaultStyle(newStyle func() lipgloss.Style) Style {
	dim := newStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Prompt:  newStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Text:    newStyle(),
		Cursor:  newStyle().Reverse(true),
		Status:  dim,
		Warning: newStyle().Foreground(lipgloss.Color("203")),
		BarFull: newStyle().Foreground(lipgloss.Color("63")),
		BarFree: dim,
		Help:    dim,
	}
}

// applyEnv overrides cfg from FLATSTR_TEXT and FLATSTR_HISTORY.
func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("FLATSTR_TEXT"); v != "" {
		cfg.Text = v
	}
	if v := getenv("FLATSTR_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HistoryLimit = n
		}
	}
	return cfg
}
