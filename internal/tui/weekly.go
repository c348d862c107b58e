package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

type weeklyModel struct {
	endDay  time.Time
	summary models.WeeklySummary
	loading bool
	errMsg  string
}

func (m weeklyModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
		return renderPage(m.title(), b.String(), "esc: back")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		return renderPage(m.title(), b.String(), "esc: back │ r: retry")
	}

	goals := m.summary.Goals
	b.WriteString(fmt.Sprintf("%-12s │ %7s │ %6s │ %6s │ %6s │ %s\n", "Date", "kcal", "P, g", "C, g", "F, g", "vs goal"))
	b.WriteString(strings.Repeat("─", 13) + "┼" + strings.Repeat("─", 9) + "┼" +
		strings.Repeat("─", 8) + "┼" + strings.Repeat("─", 8) + "┼" + strings.Repeat("─", 8) + "┼" + strings.Repeat("─", 14) + "\n")

	for _, day := range m.summary.Days {
		t := day.Totals
		b.WriteString(fmt.Sprintf("%-12s │ %7d │ %6d │ %6d │ %6d │ %s\n",
			day.Date, t.Calories, t.Protein, t.Carbs, t.Fat, progressBar(t.Calories, goals.Calories, 12)))
	}

	t := m.summary.Totals
	a := m.summary.Average
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-12s │ %7d │ %6d │ %6d │ %6d\n", "Total", t.Calories, t.Protein, t.Carbs, t.Fat))
	b.WriteString(fmt.Sprintf("%-12s │ %7d │ %6d │ %6d │ %6d\n", "Daily avg", a.Calories, a.Protein, a.Carbs, a.Fat))
	b.WriteString(fmt.Sprintf("%-12s │ %7d │ %6d │ %6d │ %6d", "Goal", goals.Calories, goals.Protein, goals.Carbs, goals.Fat))

	return renderPage(m.title(), b.String(), "←/→: previous/next week │ r: refresh │ esc: back")
}

func (m weeklyModel) title() string {
	if m.summary.From == "" {
		return "WEEK ENDING " + strings.ToUpper(formatDay(m.endDay))
	}
	return "WEEK " + m.summary.From + " … " + m.summary.To
}
