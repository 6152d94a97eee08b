package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func sitepaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryForm collects a progress entry interactively. All values stay as
// strings until the command converts them.
type entryForm struct {
	Project   string
	Activity  string
	Zone      string
	InputType string
	Date      string
	Quantity  string

	form *huh.Form
}

func newEntryForm() *entryForm {
	f := &entryForm{
		InputType: "actual",
		Date:      time.Now().UTC().Format("2006-01-02"),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Code").
				Placeholder("C-102").
				Value(&f.Project).
				Validate(validateRequired("project code")),
			huh.NewInput().
				Title("Activity").
				Placeholder("Excavation").
				Value(&f.Activity).
				Validate(validateRequired("activity")),
			huh.NewInput().
				Title("Zone (blank for none)").
				Placeholder("Zone 2").
				Value(&f.Zone),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Actual", "actual"),
					huh.NewOption("Planned", "planned"),
				).
				Value(&f.InputType),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&f.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Quantity").
				Placeholder("40").
				Value(&f.Quantity).
				Validate(validateFloat),
		),
	).WithTheme(sitepaceHuhTheme()).WithShowHelp(false)

	return f
}

func (f *entryForm) Run() error {
	return f.form.Run()
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("expected a number")
	}
	return nil
}
