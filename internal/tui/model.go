// Package tui implements the live report view: a bubbletea program that
// shows the profiling report of a running workload, refreshed every
// interval.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReportMsg carries a freshly rendered report from the workload goroutine.
type ReportMsg string

// Model is the bubbletea model for the live view.
type Model struct {
	spinner  spinner.Model
	reports  <-chan string
	report   string
	interval time.Duration
	updates  int
	width    int
	height   int
}

// NewModel creates a Model reading rendered reports from the given channel.
// The channel is expected to produce one report per interval; closing it
// ends the program.
func NewModel(reports <-chan string, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		spinner:  s,
		reports:  reports,
		interval: interval,
		report:   "gathering samples...",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForReport())
}

// waitForReport blocks on the next rendered report.
func (m Model) waitForReport() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.reports
		if !ok {
			return tea.QuitMsg{}
		}
		return ReportMsg(r)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ReportMsg:
		m.report = string(msg)
		m.updates++
		return m, m.waitForReport()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render("perftree live") + "  " +
		m.spinner.View() +
		labelStyle.Render(fmt.Sprintf("refresh %s, update #%d", m.interval, m.updates))

	box := reportBoxStyle.Render(m.report)

	return header + "\n" + box + "\n" + helpStyle.Render("q: quit")
}

// Updates returns how many reports the model has displayed.
func (m Model) Updates() int {
	return m.updates
}
