package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type browserKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Granularity key.Binding
	Combined    key.Binding
	Quit        key.Binding
}

func newBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous period"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next period"),
		),
		Granularity: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "cycle granularity"),
		),
		Combined: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle combined zones"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type reportLoadedMsg struct {
	resp *app.ReportResponse
	err  error
}

// reportBrowser is a bubbletea model that pages through report periods.
type reportBrowser struct {
	app  *App
	req  app.ReportRequest
	resp *app.ReportResponse
	err  error

	keys   browserKeyMap
	vp     viewport.Model
	width  int
	height int
	ready  bool
}

func newReportBrowser(cliApp *App, req app.ReportRequest) reportBrowser {
	return reportBrowser{
		app:  cliApp,
		req:  req,
		keys: newBrowserKeyMap(),
		vp:   viewport.New(0, 0),
	}
}

func (m reportBrowser) loadReport() tea.Cmd {
	req := m.req
	return func() tea.Msg {
		resp, err := m.app.Reports.BuildReport(context.Background(), req)
		return reportLoadedMsg{resp: resp, err: err}
	}
}

func (m reportBrowser) Init() tea.Cmd {
	return m.loadReport()
}

func (m reportBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		m.ready = true
		m.refreshContent()
		return m, nil

	case reportLoadedMsg:
		m.resp = msg.resp
		m.err = msg.err
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.shiftPeriod(-1)
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Next):
			m.shiftPeriod(1)
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Granularity):
			m.cycleGranularity()
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Combined):
			m.req.Combined = !m.req.Combined
			return m, m.loadReport()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// shiftPeriod moves the request one period backward or forward relative to
// the period of the currently loaded report.
func (m *reportBrowser) shiftPeriod(direction int) {
	if m.resp == nil {
		return
	}
	current := m.resp.Report.Period
	g := m.resp.Report.Granularity

	var next engine.Period
	if direction < 0 {
		next = engine.PreviousPeriod(current, g)
	} else {
		next = engine.NextPeriod(current, g)
	}

	if g == domain.GranCustom {
		m.req.CustomStart = &next.Start
		m.req.CustomEnd = &next.End
		return
	}
	m.req.Date = &next.Start
}

func (m *reportBrowser) cycleGranularity() {
	anchor := m.req.Date
	if anchor == nil && m.resp != nil {
		start := m.resp.Report.Period.Start
		anchor = &start
	}

	switch m.req.Granularity {
	case domain.GranDaily:
		m.req.Granularity = domain.GranWeekly
	case domain.GranWeekly:
		m.req.Granularity = domain.GranMonthly
	default:
		m.req.Granularity = domain.GranDaily
	}
	m.req.CustomStart = nil
	m.req.CustomEnd = nil
	m.req.Date = anchor
}

func (m *reportBrowser) contentHeight() int {
	h := m.height - 2 // footer: separator + key hints
	if h < 1 {
		return 1
	}
	return h
}

func (m *reportBrowser) refreshContent() {
	switch {
	case m.err != nil:
		m.vp.SetContent(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.resp == nil:
		m.vp.SetContent(formatter.Dim("Loading..."))
	default:
		var b strings.Builder
		b.WriteString(formatter.Report(m.resp))
		if len(m.resp.Warnings) > 0 {
			b.WriteString("\n\n")
			for _, w := range m.resp.Warnings {
				b.WriteString(formatter.StyleYellow.Render("warning: ") + w + "\n")
			}
		}
		m.vp.SetContent(b.String())
	}
	m.vp.GotoTop()
}

func (m reportBrowser) View() string {
	if !m.ready {
		return formatter.Dim("Loading...")
	}
	return m.vp.View() + "\n" + m.footer()
}

func (m reportBrowser) footer() string {
	hints := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Granularity, m.keys.Combined, m.keys.Quit}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, formatter.Bold(h.Help().Key)+" "+formatter.Dim(h.Help().Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
