package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenDay screen = iota
	screenEntryForm
	screenWeekly
	screenGoals
)

const statusTTL = 3 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session
	now      func() time.Time
	copyText func(string) error

	screen        screen
	width, height int

	day            time.Time
	entries        []models.FoodEntry
	idx            int
	loading        bool
	loadedFromHost bool
	summary        *models.DailySummary
	status         string

	form   entryFormModel
	weekly weeklyModel
	goals  goalsFormModel

	confirm *confirmModel
	overlay *errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session) mainLoopModel {
	now := time.Now
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		now:      now,
		copyText: clipboard.WriteAll,
		day:      models.StartOfDay(now()),
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadDay()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case dayLoadedMsg:
		return m.onDayLoaded(msg)
	case summaryLoadedMsg:
		if !sameDay(msg.day, m.day) {
			return m, nil
		}
		if msg.err != nil {
			m.summary = nil
			return m.failed(msg.err, false)
		}
		s := msg.summary
		m.summary = &s
		return m, nil
	case entrySavedMsg:
		return m.onEntrySaved(msg)
	case entryDeletedMsg:
		if msg.err != nil {
			return m.failed(msg.err, true)
		}
		m.confirm = nil
		return m.withStatus("Entry deleted", m.cmdLoadDay())
	case inferenceDoneMsg:
		if m.screen != screenEntryForm {
			return m, nil
		}
		m.form.applyInference(msg)
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenEntryForm || !m.form.draft.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spinner, cmd = m.form.spinner.Update(msg)
		return m, cmd
	case weeklyLoadedMsg:
		m.weekly.loading = false
		if msg.err != nil {
			if isSessionExpired(msg.err) {
				return m.failed(msg.err, true)
			}
			m.weekly.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.weekly.errMsg = ""
		m.weekly.summary = msg.summary
		return m, nil
	case goalsLoadedMsg:
		m.goals.loading = false
		if msg.err != nil {
			if isSessionExpired(msg.err) {
				return m.failed(msg.err, true)
			}
			m.goals.fill(models.DefaultDailyIntakeGoals())
			m.goals.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.goals.fill(msg.goals)
		return m, nil
	case goalsSavedMsg:
		m.goals.saving = false
		if msg.err != nil {
			if isSessionExpired(msg.err) {
				return m.failed(msg.err, true)
			}
			m.goals.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenDay
		return m.withStatus("Goals updated", m.cmdLoadSummary())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.form.reset()
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			expired := m.overlay.expired
			m.overlay = nil
			if expired {
				m.logout = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			id := m.confirm.entryID
			m.confirm = nil
			return m, m.cmdDeleteEntry(id)
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenEntryForm:
		return m.updateEntryForm(keyMsg)
	case screenWeekly:
		return m.updateWeekly(keyMsg)
	case screenGoals:
		return m.updateGoals(keyMsg)
	default:
		return m.updateDay(keyMsg)
	}
}

func (m mainLoopModel) View() string {
	var page string
	switch m.screen {
	case screenEntryForm:
		page = m.form.View()
	case screenWeekly:
		page = m.weekly.View()
	case screenGoals:
		page = m.goals.View()
	default:
		page = m.viewDay()
	}

	switch {
	case m.overlay != nil:
		return renderOverlay(m.overlay.View(), m.width, m.height)
	case m.confirm != nil:
		return renderOverlay(m.confirm.View(), m.width, m.height)
	}
	return page
}

func (m mainLoopModel) onDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	if !sameDay(msg.day, m.day) {
		return m, nil
	}

	if msg.cached {
		// cache only fills the gap until the server answers
		if m.loadedFromHost || msg.err != nil {
			return m, nil
		}
		m.setEntries(msg.entries)
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		return m.failed(msg.err, true)
	}
	m.loadedFromHost = true
	m.setEntries(msg.entries)
	return m, nil
}

func (m *mainLoopModel) setEntries(entries []models.FoodEntry) {
	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) onEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	m.form.saving = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrValidation) {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.failed(msg.err, true)
	}

	m.form.reset()
	m.screen = screenDay
	if !msg.editing {
		m.day = models.StartOfDay(msg.entry.CreatedAt.In(m.day.Location()))
		if msg.entry.CreatedAt.IsZero() {
			m.day = models.StartOfDay(m.now())
		}
	}
	m.loading = true
	m.loadedFromHost = false

	text := "Entry added"
	if msg.editing {
		text = "Entry updated"
	}
	return m.withStatus(text, m.cmdLoadDay())
}

// failed reports err. Expired sessions always get the overlay and end the
// loop; other errors get the overlay only when overlay is set.
func (m mainLoopModel) failed(err error, overlay bool) (tea.Model, tea.Cmd) {
	if isSessionExpired(err) {
		m.overlay = &errorOverlayModel{message: humanizeError(err), expired: true}
		return m, nil
	}
	if overlay {
		m.overlay = &errorOverlayModel{message: humanizeError(err)}
		return m, nil
	}
	m.status = humanizeError(err)
	return m, nil
}

func (m mainLoopModel) withStatus(text string, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.status = text
	cmds = append(cmds, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} }))
	return m, tea.Batch(cmds...)
}

func (m mainLoopModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenEntryForm:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	case screenGoals:
		m.goals.inputs[m.goals.focus], cmd = m.goals.inputs[m.goals.focus].Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateEntryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	switch {
	case key.Matches(msg, keys.esc):
		f.reset()
		m.screen = screenDay
		return m, nil
	case key.Matches(msg, keys.infer):
		return m, f.beginInference(m.ctx, m.services.InferenceService)
	case key.Matches(msg, keys.save):
		return m.submitEntry()
	case key.Matches(msg, keys.tab):
		f.focus = focusNext(f.inputs, f.focus)
		return m, nil
	case key.Matches(msg, keys.backtab):
		f.focus = focusPrev(f.inputs, f.focus)
		return m, nil
	case key.Matches(msg, keys.enter):
		switch f.focus {
		case fieldPhoto:
			cmd := f.beginInference(m.ctx, m.services.InferenceService)
			if cmd != nil {
				f.focus = focusNext(f.inputs, f.focus)
			}
			return m, cmd
		case fieldDescription:
			return m.submitEntry()
		default:
			f.focus = focusNext(f.inputs, f.focus)
			return m, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitEntry() (tea.Model, tea.Cmd) {
	f := &m.form
	if f.saving {
		return m, nil
	}
	if f.draft.Loading() {
		f.errMsg = "Wait for the estimate to finish or press esc."
		return m, nil
	}

	draft, err := f.parse()
	if err != nil {
		f.errMsg = humanizeError(err)
		return m, nil
	}

	f.errMsg = ""
	f.saving = true
	return m, m.cmdSaveEntry(f.editingID, draft, f.photoPath(), f.imagePath, f.imageData)
}

func (m mainLoopModel) updateWeekly(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.weekly):
		m.screen = screenDay
		return m, nil
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.prevDay):
		return m.openWeekly(m.weekly.endDay.AddDate(0, 0, -7))
	case key.Matches(msg, keys.nextDay):
		return m.openWeekly(m.weekly.endDay.AddDate(0, 0, 7))
	case key.Matches(msg, keys.refresh):
		return m.openWeekly(m.weekly.endDay)
	}
	return m, nil
}

func (m mainLoopModel) openWeekly(endDay time.Time) (tea.Model, tea.Cmd) {
	m.screen = screenWeekly
	m.weekly = weeklyModel{endDay: endDay, loading: true}
	return m, m.cmdLoadWeekly(endDay)
}

func (m mainLoopModel) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := &m.goals

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDay
		return m, nil
	case key.Matches(msg, keys.tab):
		g.focus = focusNext(g.inputs, g.focus)
		return m, nil
	case key.Matches(msg, keys.backtab):
		g.focus = focusPrev(g.inputs, g.focus)
		return m, nil
	case key.Matches(msg, keys.enter):
		if g.loading || g.saving {
			return m, nil
		}
		goals, err := g.parse()
		if err != nil {
			g.errMsg = err.Error()
			return m, nil
		}
		g.errMsg = ""
		g.saving = true
		return m, m.cmdSaveGoals(goals)
	}

	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) current() (models.FoodEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.FoodEntry{}, false
	}
	return m.entries[m.idx], true
}
