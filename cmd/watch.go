package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	statusadapter "github.com/faffage/faff/internal/adapters/render/status"
)

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of the day's sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(
				newWatchModel(app),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			result, ok := finalModel.(watchModel)
			if !ok {
				return fmt.Errorf("unexpected final watch model type %T", finalModel)
			}

			return result.err
		},
	}
}

type watchRefreshMsg time.Time

type watchModel struct {
	app      *app
	spinner  spinner.Model
	rendered string
	err      error
}

func newWatchModel(app *app) watchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return watchModel{app: app, spinner: s}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case watchRefreshMsg:
		return m, tea.Batch(m.refresh, watchTick())
	case watchRenderedMsg:
		m.rendered = msg.rendered
		m.err = msg.err
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m watchModel) View() string {
	if m.err != nil {
		return ""
	}

	if m.rendered == "" {
		return fmt.Sprintf("%s loading...\n", m.spinner.View())
	}

	return fmt.Sprintf("%s\n\n%s press q to quit\n", m.rendered, m.spinner.View())
}

type watchRenderedMsg struct {
	rendered string
	err      error
}

func (m watchModel) refresh() tea.Msg {
	log, err := m.app.logs.GetLogOrCreate(m.app.logs.Today())
	if err != nil {
		return watchRenderedMsg{err: err}
	}

	rendered, err := m.app.statusRenderer(log, statusadapter.RenderOptions{Now: m.app.now()})
	if err != nil {
		return watchRenderedMsg{err: err}
	}

	return watchRenderedMsg{rendered: rendered}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchRefreshMsg(t)
	})
}
