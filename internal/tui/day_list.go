package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.prevDay):
		return m.switchDay(m.day.AddDate(0, 0, -1))
	case key.Matches(msg, keys.nextDay):
		return m.switchDay(m.day.AddDate(0, 0, 1))
	case key.Matches(msg, keys.refresh):
		return m.switchDay(m.day)
	case key.Matches(msg, keys.newEntry):
		m.form = newEntryForm(models.InferenceDraft{}, 0, "")
		m.screen = screenEntryForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		entry, ok := m.current()
		if !ok {
			m.status = "No entries"
			return m, nil
		}
		m.form = newEntryForm(models.DraftFromEntry(entry), entry.ID, entry.ImageURL)
		m.screen = screenEntryForm
		return m, nil
	case key.Matches(msg, keys.delete):
		entry, ok := m.current()
		if !ok {
			m.status = "No entries"
			return m, nil
		}
		m.confirm = &confirmModel{entryID: entry.ID, message: entryTitle(entry)}
	case key.Matches(msg, keys.copyImage):
		entry, ok := m.current()
		if !ok || entry.ImageURL == "" {
			m.status = "This entry has no photo"
			return m, nil
		}
		if err := m.copyText(entry.ImageURL); err != nil {
			m.status = "Copy failed: " + err.Error()
			return m, nil
		}
		return m.withStatus("Photo URL copied")
	case key.Matches(msg, keys.weekly):
		return m.openWeekly(m.day)
	case key.Matches(msg, keys.goals):
		m.goals = newGoalsForm()
		m.screen = screenGoals
		return m, m.cmdLoadGoals()
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) switchDay(day time.Time) (tea.Model, tea.Cmd) {
	m.day = models.StartOfDay(day)
	m.entries = nil
	m.idx = 0
	m.summary = nil
	m.loading = true
	m.loadedFromHost = false
	return m, m.cmdLoadDay()
}

func (m mainLoopModel) viewDay() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTotals())
	b.WriteString("\n")

	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("Nothing logged for this day. Press n to add a meal.\n")
	default:
		b.WriteString(fmt.Sprintf("  %-5s │ %-28s │ %6s │ %5s │ %5s │ %5s │ %s\n", "Time", "Description", "kcal", "P", "C", "F", "Photo"))
		b.WriteString("  ──────┼──────────────────────────────┼────────┼───────┼───────┼───────┼──────\n")
		for i, e := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			photo := ""
			if e.ImageURL != "" {
				photo = "yes"
			}
			row := fmt.Sprintf("%-5s │ %-28s │ %6d │ %5d │ %5d │ %5d │ %s",
				e.CreatedAt.In(m.day.Location()).Format("15:04"), fitText(valueOrDash(e.Description), 28),
				e.Calories, e.Protein, e.Carbs, e.Fat, photo)
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(cursor)
			b.WriteString(row)
			b.WriteString("\n")
		}
		if m.loading {
			b.WriteString(helpStyle.Render("\n  refreshing..."))
			b.WriteString("\n")
		}
	}

	title := strings.ToUpper(formatDay(m.day))
	if sameDay(m.day, m.now()) {
		title += " (TODAY)"
	}
	if m.session.Login != "" {
		title += " · " + m.session.Login
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"←/→: day │ ↑/↓: select │ n: new │ e: edit │ d: delete │ c: copy photo URL\n  w: week │ g: goals │ r: refresh │ l: logout │ q: quit")
}

func (m mainLoopModel) viewTotals() string {
	totals := models.NutrientTotals{}
	for _, e := range m.entries {
		totals = totals.Add(e.Totals())
	}

	goals := models.DefaultDailyIntakeGoals()
	if m.summary != nil {
		totals = m.summary.Totals
		goals = m.summary.Goals
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Calories %s %s\n", goalCell(totals.Calories, goals.Calories, "kcal"), progressBar(totals.Calories, goals.Calories, 20)))
	b.WriteString(fmt.Sprintf("Protein  %s %s\n", goalCell(totals.Protein, goals.Protein, "g"), progressBar(totals.Protein, goals.Protein, 20)))
	b.WriteString(fmt.Sprintf("Carbs    %s %s\n", goalCell(totals.Carbs, goals.Carbs, "g"), progressBar(totals.Carbs, goals.Carbs, 20)))
	b.WriteString(fmt.Sprintf("Fat      %s %s\n", goalCell(totals.Fat, goals.Fat, "g"), progressBar(totals.Fat, goals.Fat, 20)))
	return b.String()
}

func entryTitle(e models.FoodEntry) string {
	if strings.TrimSpace(e.Description) != "" {
		return fitText(e.Description, 40)
	}
	return fmt.Sprintf("%d kcal entry", e.Calories)
}
