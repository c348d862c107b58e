package tui

import (
	"bytes"
	"os"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdLoadDay shows the cached entries of m.day at once and replaces them with
// the server's answer when it arrives.
func (m mainLoopModel) cmdLoadDay() tea.Cmd {
	ctx, food, session, day := m.ctx, m.services.FoodService, m.session, m.day

	cached := func() tea.Msg {
		entries, err := food.Cached(ctx, session, day)
		return dayLoadedMsg{day: day, entries: entries, cached: true, err: err}
	}
	fresh := func() tea.Msg {
		entries, err := food.List(ctx, session, day)
		return dayLoadedMsg{day: day, entries: entries, err: err}
	}

	return tea.Batch(cached, fresh, m.cmdLoadSummary())
}

func (m mainLoopModel) cmdLoadSummary() tea.Cmd {
	ctx, summaries, day := m.ctx, m.services.SummaryService, m.day

	return func() tea.Msg {
		summary, err := summaries.Daily(ctx, day)
		return summaryLoadedMsg{day: day, summary: summary, err: err}
	}
}

// cmdSaveEntry creates or updates an entry. The photo at path is read again
// unless it is the one the last estimate was made from.
func (m mainLoopModel) cmdSaveEntry(editingID int64, draft models.InferenceDraft, path, estimatedPath string, estimatedData []byte) tea.Cmd {
	ctx, food, session := m.ctx, m.services.FoodService, m.session

	return func() tea.Msg {
		var image []byte
		switch {
		case path == "":
		case path == estimatedPath && estimatedData != nil:
			image = bytes.Clone(estimatedData)
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return entrySavedMsg{editing: editingID != 0, err: &service.InferenceError{Message: msgPhotoUnreadable, Err: err}}
			}
			image = data
		}

		if editingID != 0 {
			entry, err := food.Update(ctx, session, editingID, draft, image)
			return entrySavedMsg{entry: entry, editing: true, err: err}
		}

		entry, err := food.Save(ctx, session, draft, image)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(id int64) tea.Cmd {
	ctx, food, session := m.ctx, m.services.FoodService, m.session

	return func() tea.Msg {
		return entryDeletedMsg{err: food.Delete(ctx, session, id)}
	}
}

func (m mainLoopModel) cmdLoadWeekly(endDay time.Time) tea.Cmd {
	ctx, summaries := m.ctx, m.services.SummaryService

	return func() tea.Msg {
		summary, err := summaries.Weekly(ctx, endDay)
		return weeklyLoadedMsg{summary: summary, err: err}
	}
}

func (m mainLoopModel) cmdLoadGoals() tea.Cmd {
	ctx, summaries := m.ctx, m.services.SummaryService

	return func() tea.Msg {
		goals, err := summaries.Goals(ctx)
		return goalsLoadedMsg{goals: goals, err: err}
	}
}

func (m mainLoopModel) cmdSaveGoals(goals models.DailyIntakeGoals) tea.Cmd {
	ctx, summaries := m.ctx, m.services.SummaryService

	return func() tea.Msg {
		saved, err := summaries.UpdateGoals(ctx, goals)
		return goalsSavedMsg{goals: saved, err: err}
	}
}
