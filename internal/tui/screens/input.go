package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/timecalc"
	"github.com/emilianohg/daylog/internal/tracker"
)

type inputField int

const (
	fieldDate inputField = iota
	fieldStart
	fieldEnd
	fieldCategory
	fieldDescription
	fieldPhone
	fieldTV
	fieldSubmit
	fieldCount
)

var inputLabels = map[inputField]string{
	fieldDate:     "Date",
	fieldStart:    "Start Time",
	fieldEnd:      "End Time",
	fieldCategory: "Category",
}

// Input is the entry form. Its draft lives here and is reset after every
// successful submit, keeping the date.
type Input struct {
	tracker *tracker.Tracker
	width   int
	height  int

	inputs      map[inputField]*textinput.Model
	description textarea.Model
	hasPhone    bool
	hasTVOn     bool
	focus       inputField
	suggestions []string

	err     error
	message string
}

func NewInput(t *tracker.Tracker, categories []string) *Input {
	newField := func(placeholder string, limit int) *textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 40
		return &ti
	}

	date := newField("YYYY-MM-DD", 10)
	date.SetValue(timecalc.Today())

	category := newField("Work, Family, Chores...", 100)
	category.ShowSuggestions = true
	category.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+f"))

	ta := textarea.New()
	ta.Placeholder = "What were you doing?"
	ta.ShowLineNumbers = false
	ta.SetWidth(40)
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	in := &Input{
		tracker: t,
		inputs: map[inputField]*textinput.Model{
			fieldDate:     date,
			fieldStart:    newField("HH:MM", 8),
			fieldEnd:      newField("HH:MM", 8),
			fieldCategory: category,
		},
		description: ta,
		suggestions: categories,
	}
	in.setFocus(fieldStart)
	return in
}

func (in *Input) SetSize(width, height int) {
	in.width = width
	in.height = height
}

type inputCategoriesMsg struct {
	categories []string
}

func (in *Input) Init() tea.Cmd {
	in.setFocus(in.focus)
	return tea.Batch(textinput.Blink, in.loadCategories)
}

func (in *Input) loadCategories() tea.Msg {
	used, err := in.tracker.Categories()
	if err != nil {
		return inputCategoriesMsg{}
	}
	return inputCategoriesMsg{categories: used}
}

func (in *Input) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case inputCategoriesMsg:
		in.inputs[fieldCategory].SetSuggestions(mergeCategories(in.suggestions, msg.categories))
		return nil

	case tea.KeyMsg:
		if cmd, handled := in.handleKey(msg); handled {
			return cmd
		}
	}

	return in.updateFocused(msg)
}

func (in *Input) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up":
		in.setFocus((in.focus + fieldCount - 1) % fieldCount)
		return nil, true
	case "down":
		in.setFocus((in.focus + 1) % fieldCount)
		return nil, true
	case "ctrl+s":
		return in.submit(), true
	case "enter":
		if in.focus == fieldSubmit {
			return in.submit(), true
		}
		in.setFocus(in.focus + 1)
		return nil, true
	case " ":
		switch in.focus {
		case fieldPhone:
			in.hasPhone = !in.hasPhone
			return nil, true
		case fieldTV:
			in.hasTVOn = !in.hasTVOn
			return nil, true
		case fieldSubmit:
			return in.submit(), true
		}
	case "esc":
		in.err = nil
		in.message = ""
		return nil, true
	}
	return nil, false
}

func (in *Input) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch in.focus {
	case fieldDate, fieldStart, fieldEnd, fieldCategory:
		*in.inputs[in.focus], cmd = in.inputs[in.focus].Update(msg)
	case fieldDescription:
		in.description, cmd = in.description.Update(msg)
	}
	return cmd
}

func (in *Input) setFocus(f inputField) {
	in.focus = f
	for field, ti := range in.inputs {
		if field == f {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	if f == fieldDescription {
		in.description.Focus()
	} else {
		in.description.Blur()
	}
}

// Draft returns the form contents as an entry draft.
func (in *Input) Draft() models.EntryDraft {
	return models.EntryDraft{
		Date:        strings.TrimSpace(in.inputs[fieldDate].Value()),
		StartTime:   strings.TrimSpace(in.inputs[fieldStart].Value()),
		EndTime:     strings.TrimSpace(in.inputs[fieldEnd].Value()),
		Category:    in.inputs[fieldCategory].Value(),
		Description: in.description.Value(),
		HasPhone:    in.hasPhone,
		HasTVOn:     in.hasTVOn,
	}
}

func (in *Input) submit() tea.Cmd {
	in.message = ""
	entry, err := in.tracker.Add(in.Draft())
	if err != nil {
		in.err = err
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			in.setFocus(fieldForError(verr.Field))
		}
		return nil
	}

	in.err = nil
	in.message = fmt.Sprintf("Added %s %s on %s", entry.Category, entry.Duration, entry.Date)
	in.reset()
	return tea.Batch(in.loadCategories, func() tea.Msg {
		return EntryAddedMsg{Date: entry.Date}
	})
}

func (in *Input) reset() {
	in.inputs[fieldStart].SetValue("")
	in.inputs[fieldEnd].SetValue("")
	in.inputs[fieldCategory].SetValue("")
	in.description.Reset()
	in.hasPhone = false
	in.hasTVOn = false
	in.setFocus(fieldStart)
}

func fieldForError(name string) inputField {
	switch name {
	case "date":
		return fieldDate
	case "start":
		return fieldStart
	case "end":
		return fieldEnd
	case "category":
		return fieldCategory
	}
	return fieldSubmit
}

func mergeCategories(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, c := range list {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (in *Input) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("NEW ENTRY"))
	b.WriteString("\n")

	if in.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", in.err)))
		b.WriteString("\n\n")
	} else if in.message != "" {
		b.WriteString(SuccessStyle.Render(in.message))
		b.WriteString("\n\n")
	}

	for _, f := range []inputField{fieldDate, fieldStart, fieldEnd, fieldCategory} {
		b.WriteString(in.label(f, inputLabels[f]))
		b.WriteString("\n")
		b.WriteString(in.inputs[f].View())
		b.WriteString("\n\n")
	}

	b.WriteString(in.label(fieldDescription, "Description"))
	b.WriteString("\n")
	b.WriteString(in.description.View())
	b.WriteString("\n\n")

	b.WriteString(in.label(fieldPhone, checkbox(in.hasPhone)+" Has Cell Phone"))
	b.WriteString("\n")
	b.WriteString(in.label(fieldTV, checkbox(in.hasTVOn)+" TV On"))
	b.WriteString("\n\n")
	b.WriteString(in.label(fieldSubmit, "[ Add Entry ]"))
	b.WriteString("\n")

	if start, end := in.inputs[fieldStart].Value(), in.inputs[fieldEnd].Value(); start != "" && end != "" {
		if d, err := timecalc.ComputeDuration(start, end); err == nil {
			b.WriteString(DimStyle.Render("Duration: " + d.String()))
			b.WriteString("\n")
		}
	}

	help := "[up/down] Move  [space] Toggle  [ctrl+f] Complete category  [ctrl+s] Add  [tab] Next view  [ctrl+c] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (in *Input) label(f inputField, text string) string {
	if in.focus == f {
		return SelectedStyle.Render("> " + text)
	}
	return NormalStyle.Render("  " + text)
}
