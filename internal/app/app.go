package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkfind/forkfind/internal/edamam"
	"github.com/forkfind/forkfind/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	AppID      string
	AppKey     string
	Endpoint   string
	Query      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := edamam.NewClient(cfg.Endpoint, cfg.AppID, cfg.AppKey)
	model := ui.NewModel(client, cfg.Query, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
