package formatter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Qty formats a quantity with two decimals, dropping them when whole.
func Qty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// Pct formats a percentage with one decimal place.
func Pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// PctStyled colors a percentage by how far along it is.
func PctStyled(v float64) string {
	text := Pct(v)
	switch {
	case v >= 100:
		return StyleGreen.Render(text)
	case v >= 50:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// Money formats a monetary amount with thousands separators.
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	cents := int64(v*100 + 0.5)
	whole := cents / 100

	digits := fmt.Sprintf("%d", whole)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	return fmt.Sprintf("%s%s.%02d", sign, strings.Join(parts, ","), cents%100)
}

// Date formats a date for table cells.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// DatePtr formats an optional date, rendering a dim dash when nil.
func DatePtr(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("--")
	}
	return Date(*t)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// RenderProgress renders a progress bar like [████░░░░] 45%. The bar is
// colored by percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// PrintWarnings writes reconciliation warnings to stderr in yellow.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, StyleYellow.Render("warning: ")+w)
	}
}

// NoColor disables all styling, for dumb terminals and piped output.
func NoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
