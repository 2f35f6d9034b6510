package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/daylog/internal/analysis"
	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/timecalc"
	"github.com/emilianohg/daylog/internal/tracker"
)

type dailyMode int

const (
	dailyModeList dailyMode = iota
	dailyModeDate
)

// Daily lists the entries of one selected date.
type Daily struct {
	tracker *tracker.Tracker
	width   int
	height  int

	date    string
	entries []models.Entry
	mode    dailyMode
	input   textinput.Model
	loading bool
	err     error
}

func NewDaily(t *tracker.Tracker) *Daily {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12

	return &Daily{
		tracker: t,
		date:    timecalc.Today(),
		input:   ti,
	}
}

func (d *Daily) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetDate selects the date shown on the next load.
func (d *Daily) SetDate(date string) {
	d.date = date
}

func (d *Daily) Date() string {
	return d.date
}

// Capturing reports whether keystrokes are going to the date input.
func (d *Daily) Capturing() bool {
	return d.mode == dailyModeDate
}

type dailyDataMsg struct {
	date    string
	entries []models.Entry
	err     error
}

func (d *Daily) Init() tea.Cmd {
	d.loading = true
	d.mode = dailyModeList
	return d.loadData
}

func (d *Daily) loadData() tea.Msg {
	entries, err := d.tracker.EntriesOn(d.date)
	return dailyDataMsg{date: d.date, entries: entries, err: err}
}

func (d *Daily) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dailyDataMsg:
		if msg.date != d.date {
			return nil
		}
		d.loading = false
		d.err = msg.err
		d.entries = msg.entries
		return nil

	case RefreshMsg:
		return d.Init()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.mode == dailyModeDate {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}
	return nil
}

func (d *Daily) handleKey(msg tea.KeyMsg) tea.Cmd {
	if d.mode == dailyModeDate {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(d.input.Value())
			if _, err := timecalc.ParseDate(value); err != nil {
				d.err = &models.ValidationError{Field: "date", Err: err}
				return nil
			}
			d.input.Blur()
			d.date = value
			return d.Init()
		case "esc":
			d.mode = dailyModeList
			d.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		return d.shift(-1)
	case "right", "l":
		return d.shift(1)
	case "t":
		d.date = timecalc.Today()
		return d.Init()
	case "r":
		return Refresh()
	case "e", "/":
		d.mode = dailyModeDate
		d.err = nil
		d.input.SetValue(d.date)
		d.input.CursorEnd()
		return d.input.Focus()
	}
	return nil
}

func (d *Daily) shift(days int) tea.Cmd {
	t, err := timecalc.ParseDate(d.date)
	if err != nil {
		t, _ = timecalc.ParseDate(timecalc.Today())
	}
	d.date = t.AddDate(0, 0, days).Format(time.DateOnly)
	return d.Init()
}

func (d *Daily) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("DAILY VIEW"))
	b.WriteString("\n")

	if d.mode == dailyModeDate {
		b.WriteString("Show date:\n")
		b.WriteString(d.input.View())
		b.WriteString("\n")
		if d.err != nil {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
			b.WriteString("\n")
		}
		b.WriteString(HelpStyle.Render("[enter] Show  [esc] Cancel"))
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render(d.date))
	b.WriteString("\n")

	if d.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if d.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
		b.WriteString("\n")
	}

	if len(d.entries) == 0 {
		b.WriteString(DimStyle.Render("No entries for this date."))
		b.WriteString("\n")
	} else {
		total := 0
		for _, e := range d.entries {
			total += e.DurationMinutes
			b.WriteString(BoxStyle.Render(renderEntry(e)))
			b.WriteString("\n")
		}
		b.WriteString(NormalStyle.Render(fmt.Sprintf("Logged: %s", timecalc.FormatMinutes(total))))
		b.WriteString("\n")
		if total > analysis.MinutesPerDay {
			b.WriteString(WarningStyle.Render("More than 24h logged for this day; some entries overlap."))
			b.WriteString("\n")
		}
	}

	help := "[left/right] Prev/next day  [t] Today  [e] Pick date  [r] Reload  [tab/1-3] Switch view  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func renderEntry(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Start: %-8s End: %s\n", e.StartTime, e.EndTime)
	fmt.Fprintf(&b, "Duration: %-5s Category: %s\n", e.Duration, e.Category)
	fmt.Fprintf(&b, "Description: %s", e.Description)

	var flags []string
	if e.HasPhone {
		flags = append(flags, "Had phone")
	}
	if e.HasTVOn {
		flags = append(flags, "TV was on")
	}
	if len(flags) > 0 {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(strings.Join(flags, " · ")))
	}
	return b.String()
}
