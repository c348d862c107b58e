package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	breakfast = models.FoodEntry{ID: 1, Calories: 350, Protein: 20, Carbs: 40, Fat: 10, Description: "oatmeal", CreatedAt: testNow.Add(-5 * time.Hour)}
	lunch     = models.FoodEntry{ID: 2, Calories: 600, Protein: 35, Carbs: 50, Fat: 25, Description: "salmon bowl", ImageURL: "http://localhost/images/u9/a.jpg", CreatedAt: testNow}
)

// ── loading ──────────────────────────────────────────────────────────────────

func TestMainLoop_Init_LoadsCacheServerAndSummary(t *testing.T) {
	m, mk := newTestLoop(t)
	day := m.day

	mk.food.EXPECT().Cached(gomock.Any(), testSession, day).Return([]models.FoodEntry{breakfast}, nil)
	mk.food.EXPECT().List(gomock.Any(), testSession, day).Return([]models.FoodEntry{breakfast, lunch}, nil)
	mk.summary.EXPECT().Daily(gomock.Any(), day).Return(models.DailySummary{Date: "2026-07-03"}, nil)

	msgs := runCmd(m.Init())
	require.Len(t, msgs, 3)

	_, ok := findMsg[summaryLoadedMsg](msgs)
	assert.True(t, ok)
}

func TestMainLoop_DayLoaded_CacheOnlyFillsTheGap(t *testing.T) {
	m, _ := newTestLoop(t)

	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast}, cached: true})
	assert.Equal(t, []models.FoodEntry{breakfast}, m.entries)
	assert.True(t, m.loading)

	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast, lunch}})
	assert.Len(t, m.entries, 2)
	assert.False(t, m.loading)

	// a late cache read must not overwrite the server's answer
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: nil, cached: true})
	assert.Len(t, m.entries, 2)
}

func TestMainLoop_DayLoaded_IgnoresOtherDays(t *testing.T) {
	m, _ := newTestLoop(t)

	m, _ = update(t, m, dayLoadedMsg{day: m.day.AddDate(0, 0, -1), entries: []models.FoodEntry{lunch}})
	assert.Empty(t, m.entries)
	assert.True(t, m.loading)
}

func TestMainLoop_DayLoaded_ExpiredSessionLogsOut(t *testing.T) {
	m, _ := newTestLoop(t)

	m, _ = update(t, m, dayLoadedMsg{day: m.day, err: service.ErrTokenIsExpiredOrInvalid})
	require.NotNil(t, m.overlay)
	assert.True(t, m.overlay.expired)
	assert.Contains(t, m.View(), "session has expired")

	// other keys are swallowed by the overlay
	m, cmd := update(t, m, keyPress("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, screenDay, m.screen)

	m, cmd = update(t, m, keyPress("enter"))
	assert.True(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_SummaryError_IsOnlyAStatus(t *testing.T) {
	m, _ := newTestLoop(t)

	m, _ = update(t, m, summaryLoadedMsg{day: m.day, err: assert.AnError})
	assert.Nil(t, m.overlay)
	assert.Nil(t, m.summary)
	assert.NotEmpty(t, m.status)
}

// ── navigation ───────────────────────────────────────────────────────────────

func TestMainLoop_ArrowsSwitchDay(t *testing.T) {
	m, mk := newTestLoop(t)
	m.entries = []models.FoodEntry{lunch}
	m.loadedFromHost = true
	yesterday := m.day.AddDate(0, 0, -1)

	mk.food.EXPECT().Cached(gomock.Any(), testSession, yesterday).Return(nil, nil)
	mk.food.EXPECT().List(gomock.Any(), testSession, yesterday).Return([]models.FoodEntry{breakfast}, nil)
	mk.summary.EXPECT().Daily(gomock.Any(), yesterday).Return(models.DailySummary{}, nil)

	m, cmd := update(t, m, keyPress("left"))
	assert.Equal(t, yesterday, m.day)
	assert.Empty(t, m.entries)
	assert.True(t, m.loading)
	assert.False(t, m.loadedFromHost)

	for _, msg := range runCmd(cmd) {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, []models.FoodEntry{breakfast}, m.entries)
	assert.NotContains(t, m.View(), "(TODAY)")
}

func TestMainLoop_SelectionStaysInRange(t *testing.T) {
	m, _ := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast, lunch}})

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	assert.Equal(t, 1, m.idx)

	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast}})
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_QuitAndLogout(t *testing.T) {
	m, _ := newTestLoop(t)

	next, cmd := update(t, m, keyPress("q"))
	assert.False(t, next.logout)
	assert.True(t, isQuit(cmd))

	next, cmd = update(t, m, keyPress("l"))
	assert.True(t, next.logout)
	assert.True(t, isQuit(cmd))
}

// ── actions ──────────────────────────────────────────────────────────────────

func TestMainLoop_DeleteAsksForConfirmation(t *testing.T) {
	m, mk := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast, lunch}})
	m, _ = update(t, m, keyPress("down"))

	m, cmd := update(t, m, keyPress("d"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Equal(t, int64(2), m.confirm.entryID)
	assert.Contains(t, m.View(), "salmon bowl")

	// n cancels without a call
	m, _ = update(t, m, keyPress("n"))
	assert.Nil(t, m.confirm)

	m, _ = update(t, m, keyPress("d"))
	mk.food.EXPECT().Delete(gomock.Any(), testSession, int64(2)).Return(nil)
	m, cmd = update(t, m, keyPress("y"))
	assert.Nil(t, m.confirm)

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	assert.Equal(t, "Entry deleted", m.status)
}

func TestMainLoop_DeleteFailureShowsOverlay(t *testing.T) {
	m, _ := newTestLoop(t)

	m, _ = update(t, m, entryDeletedMsg{err: assert.AnError})
	require.NotNil(t, m.overlay)
	assert.False(t, m.overlay.expired)

	m, cmd := update(t, m, keyPress("esc"))
	assert.Nil(t, m.overlay)
	assert.Nil(t, cmd)
	assert.False(t, m.logout)
}

func TestMainLoop_CopyImageURL(t *testing.T) {
	m, mk := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast, lunch}})

	m, _ = update(t, m, keyPress("c"))
	assert.Equal(t, "This entry has no photo", m.status)
	assert.Empty(t, *mk.copied)

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("c"))
	assert.Equal(t, "Photo URL copied", m.status)
	assert.Equal(t, lunch.ImageURL, *mk.copied)
}

func TestMainLoop_EditOpensPrefilledForm(t *testing.T) {
	m, _ := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{lunch}})

	m, _ = update(t, m, keyPress("e"))
	require.Equal(t, screenEntryForm, m.screen)
	assert.Equal(t, int64(2), m.form.editingID)
	assert.Equal(t, "600", m.form.inputs[fieldCalories].Value())
	assert.Equal(t, "salmon bowl", m.form.inputs[fieldDescription].Value())
	assert.Contains(t, m.View(), "EDIT ENTRY #2")
}

func TestMainLoop_ActionsWithoutEntries(t *testing.T) {
	m, _ := newTestLoop(t)

	for _, k := range []string{"e", "d"} {
		next, cmd := update(t, m, keyPress(k))
		assert.Nil(t, cmd)
		assert.Equal(t, "No entries", next.status)
		assert.Nil(t, next.confirm)
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func TestMainLoop_ViewDay(t *testing.T) {
	m, _ := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day})
	assert.Contains(t, m.View(), "Nothing logged")
	assert.Contains(t, m.View(), "(TODAY)")

	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{breakfast, lunch}})
	m, _ = update(t, m, summaryLoadedMsg{day: m.day, summary: models.DailySummary{
		Totals: models.NutrientTotals{Calories: 950, Protein: 55, Carbs: 90, Fat: 35},
		Goals:  models.DailyIntakeGoals{Calories: 1800, Protein: 50, Carbs: 200, Fat: 60},
	}})

	view := m.View()
	assert.Contains(t, view, "oatmeal")
	assert.Contains(t, view, "950 / 1800 kcal")
	assert.Contains(t, view, "55 / 50 g")
}
