package walker

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paseo-app/paseo-cli/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	board  application.Board
	opts   RenderOptions
	styles styles
	output string
}

func newModel(board application.Board, opts RenderOptions) model {
	return model{
		board:  board,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderBoardView(m.board, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderBoard produces the board view through a one-shot bubbletea program
// so lipgloss picks up the terminal color profile the same way interactive
// output does.
func RenderBoard(board application.Board, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(board, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
