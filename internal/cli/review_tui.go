package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/trace"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reviewTab int

const (
	tabFlags reviewTab = iota
	tabTrace
	tabFlow
)

var reviewTabTitles = []string{"Issues", "Trace", "Flow"}

type reviewKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

var reviewKeys = reviewKeyMap{
	NextTab: key.NewBinding(key.WithKeys("tab", "l"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "h"), key.WithHelp("shift+tab", "prev tab")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// reviewModel is the read-only review screen: validation issues, the
// alignment trace and the flow summary, each in a scrollable viewport.
type reviewModel struct {
	p        *domain.Programme
	flags    []validate.Flag
	rows     []trace.Row
	flow     trace.Flow
	tab      reviewTab
	viewport viewport.Model
	ready    bool
}

func newReviewModel(p *domain.Programme, flags []validate.Flag, rows []trace.Row) *reviewModel {
	return &reviewModel{
		p:     p,
		flags: flags,
		rows:  rows,
		flow:  trace.BuildFlow(rows),
	}
}

func (m *reviewModel) Init() tea.Cmd {
	return nil
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.tabContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, reviewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, reviewKeys.NextTab):
			m.tab = (m.tab + 1) % reviewTab(len(reviewTabTitles))
			m.viewport.SetContent(m.tabContent())
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, reviewKeys.PrevTab):
			m.tab = (m.tab + reviewTab(len(reviewTabTitles)) - 1) % reviewTab(len(reviewTabTitles))
			m.viewport.SetContent(m.tabContent())
			m.viewport.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *reviewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *reviewModel) headerView() string {
	tabs := make([]string, 0, len(reviewTabTitles))
	for i, title := range reviewTabTitles {
		if reviewTab(i) == m.tab {
			tabs = append(tabs, formatter.StyleHeader.Render("["+title+"]"))
		} else {
			tabs = append(tabs, formatter.StyleDim.Render(" "+title+" "))
		}
	}
	title := formatter.Bold(m.p.Title)
	line := formatter.StyleDim.Render(strings.Repeat("─", lipgloss.Width(title)))
	return fmt.Sprintf("%s\n%s\n%s", title, strings.Join(tabs, " "), line)
}

func (m *reviewModel) footerView() string {
	pct := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	return formatter.Dim(fmt.Sprintf("tab: switch view  ↑/↓: scroll  q: quit  %s", pct))
}

func (m *reviewModel) tabContent() string {
	switch m.tab {
	case tabTrace:
		return formatter.FormatTraceTable(m.rows)
	case tabFlow:
		return formatter.FormatFlowSummary(m.flow)
	default:
		return formatter.FormatFlags(m.flags)
	}
}
