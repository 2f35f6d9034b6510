package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/timecalc"
	"github.com/emilianohg/daylog/internal/tracker"
)

// Analytics shows per-category totals and insights over every entry logged
// so far. It recomputes each time it is activated.
type Analytics struct {
	tracker *tracker.Tracker
	width   int
	height  int

	result  models.Analysis
	loading bool
	err     error
}

func NewAnalytics(t *tracker.Tracker) *Analytics {
	return &Analytics{tracker: t}
}

func (a *Analytics) SetSize(width, height int) {
	a.width = width
	a.height = height
}

type analyticsDataMsg struct {
	result models.Analysis
	err    error
}

func (a *Analytics) Init() tea.Cmd {
	a.loading = true
	return a.loadData
}

func (a *Analytics) loadData() tea.Msg {
	result, err := a.tracker.Analyze()
	return analyticsDataMsg{result: result, err: err}
}

func (a *Analytics) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case analyticsDataMsg:
		a.loading = false
		a.err = msg.err
		a.result = msg.result
		return nil

	case RefreshMsg:
		return a.Init()

	case tea.KeyMsg:
		if msg.String() == "r" {
			return Refresh()
		}
	}
	return nil
}

func (a *Analytics) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("ANALYTICS"))
	b.WriteString("\n")

	if a.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if a.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", a.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render("Time Distribution"))
	b.WriteString("\n")
	if len(a.result.Categories) == 0 {
		b.WriteString(DimStyle.Render("No entries yet. Add some from the Input view."))
		b.WriteString("\n")
	}

	width := 0
	for _, c := range a.result.Categories {
		width = max(width, lipgloss.Width(c.Category))
	}
	for _, c := range a.result.Categories {
		name := NormalStyle.Render(c.Category + strings.Repeat(" ", width-lipgloss.Width(c.Category)))
		detail := DimStyle.Render(fmt.Sprintf("%s (%s%% of day)", timecalc.FormatMinutes(c.TotalMinutes), c.PercentageOfDay))
		b.WriteString(fmt.Sprintf("  %s  %s\n", name, detail))
	}
	b.WriteString("\n")

	b.WriteString(SubtitleStyle.Render("Insights"))
	b.WriteString("\n")
	if len(a.result.Insights) == 0 {
		b.WriteString(DimStyle.Render("Nothing to flag."))
		b.WriteString("\n")
	}
	for _, insight := range a.result.Insights {
		b.WriteString(InsightStyle.Render("• " + insight))
		b.WriteString("\n")
	}

	help := "[r] Recompute  [tab/1-3] Switch view  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
