package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bochang/recipebox/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
