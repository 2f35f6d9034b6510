package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/daylog/internal/config"
	"github.com/emilianohg/daylog/internal/log"
	"github.com/emilianohg/daylog/internal/tracker"
	"github.com/emilianohg/daylog/internal/tui/screens"
)

type Screen int

const (
	ScreenInput Screen = iota
	ScreenDaily
	ScreenAnalytics
	screenCount
)

var screenTitles = []string{"Input", "Daily View", "Analytics"}

type App struct {
	tracker       *tracker.Tracker
	cfg           *config.Config
	logger        *log.Logger
	currentScreen Screen
	width         int
	height        int

	// Screen models
	input     *screens.Input
	daily     *screens.Daily
	analytics *screens.Analytics
}

func NewApp(t *tracker.Tracker, cfg *config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Discard()
	}
	return &App{
		tracker:       t,
		cfg:           cfg,
		logger:        logger.WithComponent(log.ComponentTUI),
		currentScreen: screenFromView(cfg.DefaultView),
		input:         screens.NewInput(t, cfg.Categories),
		daily:         screens.NewDaily(t),
		analytics:     screens.NewAnalytics(t),
	}
}

func screenFromView(view string) Screen {
	switch view {
	case config.ViewDaily:
		return ScreenDaily
	case config.ViewAnalytics:
		return ScreenAnalytics
	}
	return ScreenInput
}

func (a *App) Init() tea.Cmd {
	return a.initScreen(a.currentScreen)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			return a, a.switchTo((a.currentScreen + 1) % screenCount)
		case "shift+tab":
			return a, a.switchTo((a.currentScreen + screenCount - 1) % screenCount)
		case "q":
			if !a.typing() {
				return a, tea.Quit
			}
		case "1", "2", "3":
			if !a.typing() {
				return a, a.switchTo(Screen(msg.String()[0] - '1'))
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetSize(msg.Width, msg.Height)
		a.daily.SetSize(msg.Width, msg.Height)
		a.analytics.SetSize(msg.Width, msg.Height)

	case screens.EntryAddedMsg:
		// Keep the daily view on the date the user is logging.
		a.daily.SetDate(msg.Date)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenInput:
		cmd = a.input.Update(msg)
	case ScreenDaily:
		cmd = a.daily.Update(msg)
	case ScreenAnalytics:
		cmd = a.analytics.Update(msg)
	}

	return a, cmd
}

// typing reports whether plain keys belong to a text field: the input form
// always, the daily view while its date picker is open.
func (a *App) typing() bool {
	return a.currentScreen == ScreenInput || (a.currentScreen == ScreenDaily && a.daily.Capturing())
}

func (a *App) switchTo(s Screen) tea.Cmd {
	a.logger.Debug("view switched", log.FieldView, screenTitles[s])
	a.currentScreen = s
	return a.initScreen(s)
}

func (a *App) initScreen(s Screen) tea.Cmd {
	switch s {
	case ScreenDaily:
		return a.daily.Init()
	case ScreenAnalytics:
		return a.analytics.Init()
	}
	return a.input.Init()
}

// CurrentScreen returns the active view.
func (a *App) CurrentScreen() Screen {
	return a.currentScreen
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenInput:
		content = a.input.View()
	case ScreenDaily:
		content = a.daily.View()
	case ScreenAnalytics:
		content = a.analytics.View()
	}

	var b strings.Builder
	b.WriteString(screens.TitleStyle.Render("TIME TRACKER"))
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(content)

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(b.String())
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(screenTitles))
	for i, title := range screenTitles {
		style := screens.InactiveTabStyle
		if Screen(i) == a.currentScreen {
			style = screens.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func Run(t *tracker.Tracker, cfg *config.Config, logger *log.Logger) error {
	app := NewApp(t, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
